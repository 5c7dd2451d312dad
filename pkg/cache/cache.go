// Package cache stores rendered artifacts so repeated requests skip
// rendering.
//
// # Backends
//
//   - [FileCache]: JSON entries on disk, for the CLI
//   - [MemoryCache]: in-process, backed by patrickmn/go-cache, for serve
//   - [RedisCache]: shared across server instances
//   - [NullCache]: disables caching
//
// # Keys
//
// Keys are built by a [Keyer] from a hash of the normalized input and the
// options that affect the output bytes. [ScopedKeyer] adds a namespace
// prefix, so several deployments can share one Redis.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.ArtifactKey(cache.InputHash(systemType, problem),
//	    cache.ArtifactKeyOpts{Format: "svg", Width: 1200, Height: 675})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// DefaultTTL is used when the configuration leaves the TTL unset.
const DefaultTTL = 7 * 24 * time.Hour
