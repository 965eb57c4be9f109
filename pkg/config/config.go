package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP      HTTP
	Logger    Logger
	Postgres  Postgres
	Redis     Redis
	Kafka     Kafka
	JWT       JWT
	OAuth     OAuth
	Google    Google
	Microsoft Microsoft
	Jobs      Jobs
	Seed      bool `env:"SEED_ON_START" envDefault:"false"`
}

type HTTP struct {
	Port        int    `env:"HTTP_PORT" envDefault:"3000"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Kafka struct {
	Brokers     []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`
	EventsTopic string   `env:"KAFKA_EVENTS_TOPIC" envDefault:"conectar.events"`
}

type JWT struct {
	Secret    string        `env:"JWT_SECRET" envDefault:"secretKey"`
	ExpiresIn time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
}

type OAuth struct {
	Timeout       time.Duration `env:"OAUTH_TIMEOUT" envDefault:"10s"`
	RetryAttempts int           `env:"OAUTH_RETRY_ATTEMPTS" envDefault:"3"`
	StateTTL      time.Duration `env:"OAUTH_STATE_TTL" envDefault:"10m"`
}

type Google struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID" envDefault:""`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET" envDefault:""`
	CallbackURL  string `env:"GOOGLE_CALLBACK_URL" envDefault:"http://localhost:3000/auth/google/callback"`
}

type Microsoft struct {
	ClientID     string `env:"MICROSOFT_CLIENT_ID" envDefault:""`
	ClientSecret string `env:"MICROSOFT_CLIENT_SECRET" envDefault:""`
	CallbackURL  string `env:"MICROSOFT_CALLBACK_URL" envDefault:"http://localhost:3000/auth/microsoft/callback"`
	Tenant       string `env:"MICROSOFT_TENANT" envDefault:"common"`
}

type Jobs struct {
	InactiveDays           int           `env:"INACTIVE_DAYS" envDefault:"30"`
	InactiveReportInterval time.Duration `env:"INACTIVE_REPORT_INTERVAL" envDefault:"24h"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
