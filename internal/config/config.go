package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	Port          string   `env:"PORT" envDefault:"8000"`
	Env           string   `env:"ENV" envDefault:"development"`
	ClientOrigin  string   `env:"CLIENT_ORIGIN" envDefault:"https://aware-app.vercel.app"`
	MonitoringKey string   `env:"MONITORING_API_KEY"`
	Database      Database `envPrefix:"DATABASE_"`
}

// Database contains connection pool parameters.
type Database struct {
	URL                    string `env:"URL" envDefault:"postgresql://localhost/awareapi?sslmode=disable"`
	MaxOpenConns           int    `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns           int    `env:"MAX_IDLE_CONNS" envDefault:"25"`
	ConnMaxIdleMinutes     int    `env:"CONN_MAX_IDLE_MINUTES" envDefault:"5"`
	ConnMaxLifetimeMinutes int    `env:"CONN_MAX_LIFETIME_MINUTES" envDefault:"30"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
