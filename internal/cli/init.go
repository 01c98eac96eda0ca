// Package cli provides common initialization for the raijai binary:
// env file loading, logging, configuration and the blob store.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"raijai/internal/backend"
	"raijai/internal/blob"
	"raijai/internal/config"
	"raijai/internal/ledger"
	applog "raijai/internal/log"
)

// SetupLogger initializes structured logging and installs it as the
// default logger.
func SetupLogger(level string) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(level),
		Component: applog.ComponentCLI,
		Handler:   slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: applog.ParseLevel(level)}),
	})
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// OpenLedger builds the configured blob store and loads the ledger
// from it, resuming a previously opened session if one exists. The
// store is returned as well so callers can reach adjacent keys
// (preferences) through the same backend.
func OpenLedger(ctx context.Context, logger *applog.Logger, cfg *config.Config) (*ledger.Ledger, blob.Store, backend.CleanupFunc, error) {
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateStore(backend.Config{
		Type:           backend.Type(cfg.StorageBackend),
		SQLiteDBPath:   cfg.SQLiteDBPath,
		PersistLatency: cfg.PersistLatency,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create blob store: %w", err)
	}

	l := ledger.New(result.Store)
	if err := l.Load(ctx); err != nil {
		result.Cleanup()
		return nil, nil, nil, fmt.Errorf("load ledger: %w", err)
	}
	l.ResumeSession(ctx)
	return l, result.Store, result.Cleanup, nil
}
