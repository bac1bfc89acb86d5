// Package cache provides byte-level caching of rendered artifacts.
//
// The render command hashes its input (the serialized tree plus the render
// options) into a cache key and stores the produced document under it, so
// re-rendering an unchanged tree is a file read. Two implementations are
// provided: [FileCache] for normal CLI use and [NullCache] for --no-cache
// runs and tests.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations must treat a missing or expired entry as a miss, never an
// error.
type Cache interface {
	// Get retrieves the value for key. The second result reports whether
	// the key was found (and not expired).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// RenderKey builds the cache key for a rendered artifact: the hash of the
// serialized tree combined with everything that changes the output bytes.
// Callers pass a zero scale for formats whose bytes do not depend on it.
func RenderKey(treeHash, format string, width, height int, gradient, border bool, title string, scale float64) string {
	return hashKey("render", treeHash, format, width, height, gradient, border, title, scale)
}
