// Package config loads dicesim process settings from the environment.
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/0xSalik/statsproject/internal/errors"
)

// Config holds process settings. Command line flags override these values.
type Config struct {
	LogLevel   string        `env:"DICESIM_LOG_LEVEL"   envDefault:"warn"`
	RedisAddr  string        `env:"DICESIM_REDIS_ADDR"`
	OutcomeTTL time.Duration `env:"DICESIM_OUTCOME_TTL" envDefault:"24h"`
	Seed       uint64        `env:"DICESIM_SEED"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if _, err := c.Level(); err != nil {
		vb.Fieldf("DICESIM_LOG_LEVEL", "unknown level %q", c.LogLevel)
	}
	if c.OutcomeTTL <= 0 {
		vb.Field("DICESIM_OUTCOME_TTL", "must be positive")
	}

	return vb.Build()
}

// Level returns the slog level named by LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", c.LogLevel)
	}
	return level, nil
}
