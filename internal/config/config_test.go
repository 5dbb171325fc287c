package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xSalik/statsproject/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "DICESIM_LOG_LEVEL", "DICESIM_REDIS_ADDR", "DICESIM_OUTCOME_TTL", "DICESIM_SEED")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.OutcomeTTL)
	assert.Zero(t, cfg.Seed)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DICESIM_LOG_LEVEL", "debug")
	t.Setenv("DICESIM_REDIS_ADDR", "localhost:6379")
	t.Setenv("DICESIM_OUTCOME_TTL", "90m")
	t.Setenv("DICESIM_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.OutcomeTTL)
	assert.Equal(t, uint64(42), cfg.Seed)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_ParseError(t *testing.T) {
	unsetEnv(t, "DICESIM_LOG_LEVEL", "DICESIM_OUTCOME_TTL")
	t.Setenv("DICESIM_SEED", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogLevel: "loud", OutcomeTTL: 0}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "DICESIM_LOG_LEVEL")
	assert.Contains(t, err.Error(), "DICESIM_OUTCOME_TTL")

	cfg = &Config{LogLevel: "ERROR", OutcomeTTL: time.Minute}
	require.NoError(t, cfg.Validate())
}

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
