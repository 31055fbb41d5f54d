package cache

import (
	"context"
	"time"
)

// Store is the key-value backend used for cached responses.
//
// TTL semantics for Set:
//   - Positive duration: entry expires after this duration
//   - Zero: use the store's configured default TTL
//
// Implementations never track expiry themselves; expiry is the backend's
// native behavior.
type Store interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteMatching removes every key matching the glob pattern and returns
	// the number of keys deleted. Returns 0 without error when the store is
	// unavailable.
	DeleteMatching(ctx context.Context, pattern string) (int, error)

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Available reports whether the backend is currently reachable.
	// Callers consult this before attempting lookups so an unavailable
	// backend degrades to a cache bypass instead of per-request errors.
	Available() bool
}
