package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Matheus-hora48/Teste-Conectar/internal/api"
	"github.com/Matheus-hora48/Teste-Conectar/internal/clients/oauth"
	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/internal/repository"
	"github.com/Matheus-hora48/Teste-Conectar/internal/service"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/broker"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/config"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/job"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/logger"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/postgres"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/redis"
)

const (
	ReadTimeout       = 5 * time.Second
	WriteTimeout      = 15 * time.Second
	IdleTimeout       = 60 * time.Second
	ReadHeaderTimeout = 2 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.Logger.Level))
	slog.SetDefault(l)

	pool, err := postgres.ConnectToPostgres(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)

	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	rdb, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	panicOnErr("connect to redis", err)

	defer rdb.Close()

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	stateRepo := repository.NewStateRepository(rdb, cfg.OAuth.StateTTL)

	providers := make(map[entity.Provider]service.OAuthProvider)

	if cfg.Google.ClientID != "" {
		providers[entity.ProviderGoogle] = oauth.NewGoogle(cfg)
	}

	if cfg.Microsoft.ClientID != "" {
		providers[entity.ProviderMicrosoft] = oauth.NewMicrosoft(cfg)
	}

	tokens := service.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	authService := service.NewAuthService(userRepo, tokens, stateRepo, providers, producer)
	userService := service.NewUserService(userRepo, clientRepo, producer)
	clientService := service.NewClientService(clientRepo, userRepo, producer)

	if cfg.Seed {
		err = service.NewSeeder(userService, clientService, userRepo).Run(ctx)
		panicOnErr("seed database", err)
	}

	h := api.NewHandler(authService, userService, clientService, cfg.HTTP.FrontendURL)
	mw := api.NewMiddleware(authService, cfg.HTTP.FrontendURL)
	router := api.NewRouter(h, mw)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadTimeout:       ReadTimeout,
		WriteTimeout:      WriteTimeout,
		IdleTimeout:       IdleTimeout,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	jobs := job.NewService().
		RegisterJob("inactive_users_report", cfg.Jobs.InactiveReportInterval, func(ctx context.Context) error {
			return userService.ReportInactiveUsers(ctx, cfg.Jobs.InactiveDays)
		})
	jobs.Start(ctx)

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		l.Info("http server started", "port", cfg.HTTP.Port, "oauth_providers", len(providers))

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		l.Debug("http server stopped")
	}()

	waitSignal(l, cancel, server)
	jobs.Stop()
	wg.Wait()
}

func waitSignal(l *slog.Logger, cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	l.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		l.Error("server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
