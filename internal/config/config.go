package config

import (
	"fmt"
	"os"

	"go-simpler.org/env"

	"mini-os/internal/logger"
)

// Config is read from the environment only. Nothing is persisted between runs.
type Config struct {
	LogLevel    string `env:"MINIOS_LOG_LEVEL" default:"info"`
	LogJSON     bool   `env:"MINIOS_LOG_JSON" default:"false"`
	StartDir    string `env:"MINIOS_START_DIR"`
	EventBuffer int    `env:"MINIOS_EVENT_BUFFER" default:"256"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if cfg.StartDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		cfg.StartDir = wd
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if _, err := logger.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("MINIOS_LOG_LEVEL: %w", err)
	}
	if cfg.EventBuffer <= 0 {
		return fmt.Errorf("MINIOS_EVENT_BUFFER must be positive, got %d", cfg.EventBuffer)
	}
	return nil
}
