package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPPort int    `env:"ACTIVITIES_HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"ACTIVITIES_LOG_LEVEL" envDefault:"info"`
	SeedFile string `env:"ACTIVITIES_SEED_FILE"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid ACTIVITIES_HTTP_PORT: %d", cfg.HTTPPort)
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(c.HTTPPort))
}

// Redacted returns a view safe for logging
func (c *Config) Redacted() map[string]any {
	return map[string]any{
		"httpPort":    c.HTTPPort,
		"logLevel":    c.LogLevel,
		"seedFileSet": c.SeedFile != "",
	}
}
