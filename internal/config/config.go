package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Storage backend: "memory" or "sqlite"
	StorageBackend string
	SQLiteDBPath   string

	// Simulated persistence latency applied to blob reads and writes
	PersistLatency time.Duration

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		StorageBackend: getEnv("RAIJAI_BACKEND", "sqlite"),
		SQLiteDBPath:   getEnv("RAIJAI_DB_PATH", defaultDBPath()),
		PersistLatency: getEnvDuration("RAIJAI_PERSIST_LATENCY", 0),
		LogLevel:       getEnv("RAIJAI_LOG_LEVEL", "warn"),
	}
	return cfg
}

func defaultDBPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".raijai", "raijai.db")
	}
	return "./data/raijai.db"
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.StorageBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid storage backend '%s': must be one of %v", c.StorageBackend, validBackends))
	}

	if c.StorageBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if c.PersistLatency < 0 {
		errors = append(errors, fmt.Sprintf("invalid persist latency %v: must not be negative", c.PersistLatency))
	} else if c.PersistLatency > 10*time.Second {
		errors = append(errors, fmt.Sprintf("invalid persist latency %v: must be at most 10 seconds", c.PersistLatency))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
