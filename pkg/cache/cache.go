// Package cache provides a pluggable byte cache for downloaded template
// archives.
//
// Archives are immutable per (source, name, version), so entries are
// typically stored without a TTL. Backends:
//
//   - [FileCache]: per-user cache directory, the CLI default
//   - [RedisCache]: shared cache for CI runners
//   - [NullCache]: caching disabled
//
// Only artifact bytes are cached here; catalog API responses are never
// cached.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque byte values under string keys.
type Cache interface {
	// Get retrieves a value. The second result reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes the SHA-256 hex digest of data. Backends use it to derive
// filesystem-safe names from cache keys.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
