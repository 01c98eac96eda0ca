// Package blob defines the key-value persistence port used by the
// ledger. Values are opaque byte blobs keyed by fixed string
// identifiers; atomicity across keys is not assumed.
package blob

import "context"

// Store is the outbound persistence port.
type Store interface {
	// Get returns the blob for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes the blob for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
