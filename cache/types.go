package cache

import (
	"context"
	"time"
)

// Cache stores finalized delivery URLs by key.
type Cache interface {
	// Get returns the URL stored under key or ErrMiss
	Get(ctx context.Context, key string) (string, error)

	// Set stores url under key. A zero ttl uses the driver default,
	// a negative ttl is rejected.
	Set(ctx context.Context, key, url string, ttl time.Duration) error

	// Delete removes a key
	Delete(ctx context.Context, key string) error

	// Clear removes every key under the configured prefix
	Clear(ctx context.Context) error

	// Close releases the backend
	Close() error

	// Ping checks if the backend is reachable
	Ping(ctx context.Context) error
}
