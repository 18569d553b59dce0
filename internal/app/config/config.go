// Package config loads typed application configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all process-level configuration.
// It is constructed once at startup and passed explicitly to the components
// that need it; nothing reads the environment after Load returns.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// FrontendURL is the origin allowed by CORS, with credentials.
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// JWTSecret signs every issued token. It has no default: a missing
	// secret is a fatal configuration error, not a per-request one.
	JWTSecret string `env:"JWT_SECRET"`

	// CacheTTL is the lifetime of cached saved-recipe listings.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig holds the Postgres connection settings.
type DBConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"recipes"`

	// RunMigrations enables AutoMigrate on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`
}

// RedisConfig holds the optional Redis cache settings.
// An empty Host disables caching entirely.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
}

// Addr returns the host:port address of the Redis server.
func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// Load reads an optional .env file, parses the environment into a Config
// and validates it. It fails when JWT_SECRET is absent.
func Load() (*Config, error) {
	// .env is a development convenience; absence is not an error
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return &cfg, nil
}
