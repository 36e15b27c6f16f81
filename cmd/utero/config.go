package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/utero/internal/security"
	"github.com/terraincognita07/utero/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultEnvFile = ".env"

type appConfig struct {
	Port            string
	Location        *time.Location
	Store           storage.Config
	DefaultLanguage string
}

func loadConfig() (appConfig, error) {
	port, err := resolvePort()
	if err != nil {
		return appConfig{}, err
	}

	return appConfig{
		Port:     port,
		Location: mustLoadLocation(getEnv("TZ", "UTC")),
		Store: storage.Config{
			Backend:   getEnv("STORE_BACKEND", storage.BackendSQLite),
			DBPath:    getEnv("DB_PATH", filepath.Join("data", "utero.db")),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
			Scope:     getEnv("STORE_SCOPE", "utero"),
		},
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if err := security.ValidateSecretKey(secret); err != nil {
		return "", err
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := strings.TrimSpace(getEnv("PORT", "8080"))
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q", raw)
	}
	return raw, nil
}

func newLogger(level string, format string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if strings.EqualFold(strings.TrimSpace(format), "console") {
		config = zap.NewDevelopmentConfig()
	}

	parsed, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	config.Level = zap.NewAtomicLevelAt(parsed)

	return config.Build()
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		if logger != nil {
			logger.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		}
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
