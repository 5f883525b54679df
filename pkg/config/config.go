// Package config reads engine configuration from environment variables,
// loading a .env file first when one is present.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the small amount of runtime configuration the extraction
// engine needs. The PDF geometric templates are compile-time constants and
// deliberately not configurable here.
type Config struct {
	LogLevel        slog.Level
	DefaultCurrency string
	ExportDir       string
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	return &Config{
		LogLevel:        parseLevel(getEnv("LOG_LEVEL", "info")),
		DefaultCurrency: getEnv("DEFAULT_CURRENCY", "OMR"),
		ExportDir:       getEnv("EXPORT_DIR", "."),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
