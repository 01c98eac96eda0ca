package backend

import (
	"time"

	"raijai/internal/blob"
)

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the blob store instance and its cleanup function.
type Result struct {
	Store   blob.Store
	Cleanup CleanupFunc
}

// Type represents the storage backend type
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string

	// Simulated persistence latency, applied to any backend
	PersistLatency time.Duration
}
