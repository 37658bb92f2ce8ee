// Package cache provides the byte cache behind syntax highlighting and page
// rendering.
//
// Three backends implement [Cache]:
//   - [FileCache]: JSON entries under a directory (the CLI default,
//     ~/.cache/cheatsheet/)
//   - [RedisCache]: a shared Redis instance, so CI runners and developer
//     machines reuse each other's fragments
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer] so that every component hashes its inputs the
// same way; [ScopedKeyer] prefixes keys when several sites share a backend.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys.
// A ttl of zero means the entry never expires.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}
