package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/Matheus-hora48/Teste-Conectar/internal/entity"
	"github.com/Matheus-hora48/Teste-Conectar/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/api/health": {},
}

//go:generate go run go.uber.org/mock/mockgen@latest -source=middlewares.go -destination=../mocks/middlewares.go -package=mocks

type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (entity.Caller, error)
}

type Middleware struct {
	tokens      TokenVerifier
	frontendURL string
}

func NewMiddleware(tokens TokenVerifier, frontendURL string) *Middleware {
	return &Middleware{
		tokens:      tokens,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (m.frontendURL == "" || origin == m.frontendURL) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := skipLogging[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		if ip, ok := ctx.Value(entity.CtxKeyIP{}).(string); ok && ip != "" {
			ctx = logger.SetIP(ctx, ip)
		}

		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetLogType(ctx, "webrequest")

		slog.InfoContext(ctx, "incoming request")

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("X-Request-Id", logger.RequestIDFromCtx(ctx))

		next.ServeHTTP(ww, r.WithContext(ctx))

		slog.InfoContext(ctx, "request completed",
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
				sendJSON(ctx, w, http.StatusInternalServerError, ResponseError{Message: entity.ErrMsgInternal})
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ip string

		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			ip = strings.TrimSpace(ips[0])
		}

		if ip == "" {
			if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
				ip = strings.TrimSpace(realIP)
			}
		}

		if ip == "" {
			var err error

			ip, _, err = net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
		}

		ctx := context.WithValue(r.Context(), entity.CtxKeyIP{}, ip)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Auth resolves the bearer token into the caller identity.
func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetLogType(r.Context(), "auth")

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		caller, err := m.tokens.VerifyToken(ctx, token)
		if err != nil {
			if errors.Is(err, entity.ErrUnauthorized) {
				sendErr(ctx, w, http.StatusUnauthorized, err, tokenErrMsg(err))
			} else {
				sendErr(ctx, w, http.StatusInternalServerError, err, entity.ErrMsgInternal)
			}

			return
		}

		ctx = logger.SetUserID(ctx, caller.ID.String())
		ctx = entity.SetCallerToContext(ctx, caller)
		ctx = logger.SetLogType(ctx, "webrequest")

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly must run after Auth.
func (m *Middleware) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		caller, err := entity.CallerFromContext(ctx)
		if err != nil {
			sendErr(ctx, w, http.StatusUnauthorized, err, entity.ErrMsgUnauthorized)
			return
		}

		if !caller.IsAdmin() {
			sendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, entity.ErrMsgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}
