package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	AppHost                string        `env:"APP_HOST" envDefault:"127.0.0.1"`
	AppPort                string        `env:"APP_PORT" envDefault:"8080"`
	DatabaseDriver         string        `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN            string        `env:"DATABASE_DSN" envDefault:"tasks.db"`
	JWTSecretKey           string        `env:"JWT_SECRET_KEY"`
	JWTExpiration          time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
	BcryptCost             int           `env:"BCRYPT_COST" envDefault:"10"`
	RateLimit              int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
	RedisAddr              string        `env:"REDIS_ADDR"`
	RedisRateLimitPrefix   string        `env:"REDIS_RATE_LIMIT_PREFIX" envDefault:"task_manager:rate_limit"`
	CORSAllowOrigins       []string      `env:"CORS_ALLOW_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeoutSeconds int           `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`
	LogLevel               string        `env:"LOG_LEVEL" envDefault:"INFO"`
}

// AppURL is the listen address of the HTTP server.
func (c Config) AppURL() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func Load() Config {
	cfg, err := Parse()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

// Parse reads the configuration from the environment and validates it.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.DatabaseDriver = strings.ToLower(strings.TrimSpace(cfg.DatabaseDriver))
	cfg.LogLevel = strings.ToUpper(strings.TrimSpace(cfg.LogLevel))

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppHost == "" || cfg.AppPort == "" {
		return fmt.Errorf("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1 and 8080)")
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres)
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must not be empty")
	}
	if strings.TrimSpace(cfg.JWTSecretKey) == "" {
		return fmt.Errorf("JWT_SECRET_KEY must not be empty")
	}
	if cfg.JWTExpiration <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be a positive duration (e.g. 24h)")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.RateLimit <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}
