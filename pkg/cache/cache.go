// Package cache stores converted preview artifacts between runs.
//
// Converting a preview to PDF or PNG shells out to rsvg-convert, and the
// Graphviz net diagram runs a WebAssembly build of Graphviz. Both are slow
// compared to synthesis, and their output depends only on their input
// document and a few settings, so the pipeline keys converted bytes by a
// hash of exactly those inputs (see [ArtifactKey]).
//
// Two implementations are provided: [FileCache] for CLI use, rooted at
// [DefaultDir], and [NullCache] for tests or --no-cache runs.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL bounds how long a cached artifact is reused.
const DefaultTTL = 30 * 24 * time.Hour

// Cache is a byte store keyed by [ArtifactKey] strings.
type Cache interface {
	// Get returns the stored bytes and whether the key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// DefaultDir returns the cache directory using the XDG standard
// (~/.cache/idcgen).
func DefaultDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, "idcgen"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "idcgen"), nil
}
