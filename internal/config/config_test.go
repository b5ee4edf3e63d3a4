package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/favkeeper/internal/server/jwt"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FAVKEEPER_ADDRESS", "")
	t.Setenv("FAVKEEPER_JWT_SECRET", "")
	t.Setenv("FAVKEEPER_TOKEN_TTL", "")
	t.Setenv("FAVKEEPER_LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, jwt.DefaultTokenTTL, cfg.TokenTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.True(t, cfg.IsDefaultSecret())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("FAVKEEPER_ADDRESS", ":9090")
	t.Setenv("FAVKEEPER_JWT_SECRET", "super-secret")
	t.Setenv("FAVKEEPER_TOKEN_TTL", "12h")
	t.Setenv("FAVKEEPER_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.IsDefaultSecret())
}

func TestLoad_InvalidTokenTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
	}{
		{name: "not a duration", ttl: "seven days"},
		{name: "zero", ttl: "0s"},
		{name: "negative", ttl: "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FAVKEEPER_TOKEN_TTL", tt.ttl)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "FAVKEEPER_TOKEN_TTL")
		})
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("FAVKEEPER_TOKEN_TTL", "")
	t.Setenv("FAVKEEPER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FAVKEEPER_LOG_LEVEL")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			level, err := parseLogLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}
