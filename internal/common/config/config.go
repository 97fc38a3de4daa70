package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string `env:"PORT" envDefault:"3000"`
	Environment  string `env:"ENV" envDefault:"development"`
	ReadTimeout  int    `env:"READ_TIMEOUT" envDefault:"10"`
	WriteTimeout int    `env:"WRITE_TIMEOUT" envDefault:"10"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`

	// RulesPath points at the fit-check rule file; empty uses the embedded rules.
	RulesPath string `env:"FIT_RULES_PATH"`
	// ReportsDBPath enables the sqlite report log when set.
	ReportsDBPath string `env:"FIT_REPORTS_DB_PATH"`
	FitCheckURL   string `env:"FITCHECK_URL" envDefault:"http://localhost:3003"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether human-readable logs should be used.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
