package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration read from the environment
type Config struct {
	StorageType    string        `env:"GAMEUTILS_STORAGE_TYPE"     envDefault:"memory"`
	RedisURL       string        `env:"GAMEUTILS_REDIS_URL"        envDefault:"redis://localhost:6379"`
	RedisRosterTTL time.Duration `env:"GAMEUTILS_REDIS_ROSTER_TTL" envDefault:"0s"`
	LogLevel       string        `env:"GAMEUTILS_LOG_LEVEL"        envDefault:"info"`
	RootTag        string        `env:"GAMEUTILS_ROOT_TAG"         envDefault:"ROOT"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
