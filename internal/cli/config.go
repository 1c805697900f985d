package cli

import (
	"io"
	"log/slog"

	"github.com/mcoot/gameutils/internal/config"
)

// Config holds CLI configuration
type Config struct {
	Env     config.Config
	RootTag string
	Output  string
	Verbose bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output:  "text",
		Verbose: false,
	}
}

// LoadEnv reads process configuration from the environment
func (c *Config) LoadEnv() error {
	env, err := config.Load()
	if err != nil {
		return err
	}
	c.Env = env
	if c.RootTag == "" {
		c.RootTag = env.RootTag
	}
	return nil
}

// Logger returns a JSON logger writing to w at the configured level
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := c.Env.SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}
