package http

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the server settings read from the environment.
type Config struct {
	Addr    string `env:"CINTA_HTTP_ADDR"    envDefault:":8080"`
	Workers int    `env:"CINTA_HTTP_WORKERS" envDefault:"4"`
}

// LoadConfig reads the server configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
