package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/iudanet/favkeeper/internal/server/jwt"
)

// Значения по умолчанию
const (
	DefaultAddress = ":8080"

	// defaultSecret используется только если секрет не задан окружением
	// Годится для локальной разработки, в проде обязателен FAVKEEPER_JWT_SECRET
	defaultSecret = "dev-insecure-secret"
)

// Config содержит конфигурацию сервера
// Секрет подписи токенов фиксируется на старте и не ротируется
type Config struct {
	Address   string        // адрес HTTP listener
	JWTSecret string        // секрет подписи токенов
	TokenTTL  time.Duration // срок жизни выданного токена
	LogLevel  slog.Level
}

// Load читает конфигурацию из окружения
// Если рядом лежит .env файл, он подгружается (отсутствие файла не ошибка)
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Address:   envOrDefault("FAVKEEPER_ADDRESS", DefaultAddress),
		JWTSecret: envOrDefault("FAVKEEPER_JWT_SECRET", defaultSecret),
		TokenTTL:  jwt.DefaultTokenTTL,
		LogLevel:  slog.LevelInfo,
	}

	if v := os.Getenv("FAVKEEPER_TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FAVKEEPER_TOKEN_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("FAVKEEPER_TOKEN_TTL must be positive, got %s", ttl)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("FAVKEEPER_LOG_LEVEL"); v != "" {
		level, err := parseLogLevel(v)
		if err != nil {
			return nil, err
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// IsDefaultSecret сообщает, что сервер работает на dev секрете
func (c *Config) IsDefaultSecret() bool {
	return c.JWTSecret == defaultSecret
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid FAVKEEPER_LOG_LEVEL: %q", v)
	}
}
