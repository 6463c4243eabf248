// Package cache stores rendered artifacts between runs.
//
// Laying a graph out is the slow part of a run, and its output depends only
// on the DOT source and the output format. Artifacts are therefore keyed by
// [ArtifactKey] and a run over an unchanged tree skips Graphviz entirely.
//
// Two implementations are provided: [FileCache] for the CLI, storing entries
// under the user cache directory, and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired or corrupt entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultTTL is how long rendered artifacts are kept.
const DefaultTTL = 7 * 24 * time.Hour
