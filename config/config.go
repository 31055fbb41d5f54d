// Package config loads application configuration from the process
// environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/danielevilela/go-api-boilerplate/pkg/logger"
	"github.com/danielevilela/go-api-boilerplate/pkg/redis"
)

// Config holds all application configuration.
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port int    `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Cache     CacheConfig
	RateLimit RateLimitConfig
	Redis     redis.Config
	Sentry    logger.SentryConfig
}

// CacheConfig holds response-cache defaults.
type CacheConfig struct {
	TTL       time.Duration `env:"CACHE_TTL" envDefault:"300s"`
	KeyPrefix string        `env:"CACHE_KEY_PREFIX" envDefault:"api"`
}

// RateLimitConfig holds the per-client request budget.
type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT" envDefault:"100"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether the app runs in development mode.
// Diagnostic cache endpoints are only mounted in development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
