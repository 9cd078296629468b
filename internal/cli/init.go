// Package cli provides common initialization utilities for cmd/spendmap.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"spendmap/internal/config"
	"spendmap/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the SQLite slot store, falling back to an in-memory store
// when the database cannot be opened. Storage trouble degrades the app to
// session-only persistence; it never prevents startup.
func OpenStore(ctx context.Context, logger *slog.Logger, dbPath string) storage.SlotStore {
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		logger.Warn("SQLite unavailable, using in-memory store", "error", err, "path", dbPath)
		return storage.NewMemoryStore()
	}
	logger.InfoContext(ctx, "Opened SQLite store", "path", dbPath)
	return store
}
