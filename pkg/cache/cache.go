// Package cache stores rendered artifacts keyed by everything that went
// into them, so re-running a sweep with unchanged inputs skips the
// geometry and rendering entirely.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented store with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
