// Package cache provides the optional read-through cache used by the crypto
// price exercise. The LLM core performs no caching.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/practica/exercises/internal/config"
)

// ErrMiss is returned when a key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache stores JSON-serializable values with a TTL.
type Cache interface {
	// Get unmarshals the cached value into dest, or returns ErrMiss.
	Get(ctx context.Context, key string, dest interface{}) error
	// Set marshals value and stores it for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Delete removes a key.
	Delete(ctx context.Context, key string) error
}

// FromConfig builds the configured cache backend, or nil when caching is
// disabled.
func FromConfig(cfg config.CacheConfig) Cache {
	if !cfg.Enabled {
		return nil
	}
	if cfg.Backend == "redis" {
		return NewRedis(cfg)
	}
	return NewMemory()
}
