// Package cache provides response caching for the maze HTTP server.
//
// Generation is deterministic, so a maze rendered once for a given
// (algorithm, dimensions, seed, format) tuple never changes; caching the
// rendered artifact is safe indefinitely and cheap to key by hash. Two
// implementations exist: a no-op NullCache for the CLI and tests, and a
// Redis-backed cache for server deployments.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores rendered maze artifacts keyed by string.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key builds a cache key by hashing the components under a readable prefix.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}
