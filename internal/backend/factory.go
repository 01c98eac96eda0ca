package backend

import (
	"fmt"
	"log/slog"

	"raijai/internal/blob"
	"raijai/internal/blob/memory"
	"raijai/internal/blob/sqlite"
)

// Factory creates blob stores based on configuration
type Factory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateStore builds the configured blob store, wrapped with the
// simulated persistence latency when one is set.
func (f *Factory) CreateStore(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	case MemoryBackend:
		return f.createMemoryStore(config)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *Factory) createSQLiteStore(config Config) (*Result, error) {
	store, err := sqlite.New(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite store: %w", err)
	}

	f.logger.Info("Initialized SQLite blob store",
		"db_path", config.SQLiteDBPath,
		"latency", config.PersistLatency)

	return &Result{
		Store:   blob.WithLatency(store, config.PersistLatency),
		Cleanup: store.Close,
	}, nil
}

func (f *Factory) createMemoryStore(config Config) (*Result, error) {
	store := memory.New()

	f.logger.Info("Initialized memory blob store", "latency", config.PersistLatency)

	return &Result{
		Store:   blob.WithLatency(store, config.PersistLatency),
		Cleanup: store.Close,
	}, nil
}
