package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gobeaver/beaver-media/cache/driver"
)

// item is a cached URL with its expiry in unix nanoseconds (0 = never)
type item struct {
	url        string
	expiration int64
}

func (it *item) expired(now int64) bool {
	return it.expiration > 0 && now > it.expiration
}

// MemoryCache keeps URLs in process memory
type MemoryCache struct {
	mu              sync.RWMutex
	items           map[string]*item
	maxKeys         int
	defaultTTL      time.Duration
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	closeOnce       sync.Once
	keyPrefix       string
}

// Config holds memory cache specific configuration
type Config struct {
	MaxKeys         int
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
	KeyPrefix       string
}

// New creates a new memory cache and starts its janitor goroutine
func New(cfg Config) *MemoryCache {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = time.Minute
	}

	mc := &MemoryCache{
		items:           make(map[string]*item),
		maxKeys:         cfg.MaxKeys,
		defaultTTL:      cfg.DefaultTTL,
		cleanupInterval: cfg.CleanupInterval,
		stopCleanup:     make(chan struct{}),
		keyPrefix:       cfg.KeyPrefix,
	}

	go mc.cleanupExpired()

	return mc
}

// Get retrieves a URL by key
func (mc *MemoryCache) Get(ctx context.Context, key string) (string, error) {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	it, ok := mc.items[mc.keyPrefix+key]
	if !ok || it.expired(time.Now().UnixNano()) {
		return "", driver.ErrMiss
	}

	return it.url, nil
}

// Set stores a URL with optional TTL
func (mc *MemoryCache) Set(ctx context.Context, key, url string, ttl time.Duration) error {
	if ttl < 0 {
		return fmt.Errorf("invalid ttl %s", ttl)
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	fullKey := mc.keyPrefix + key
	now := time.Now()

	if mc.maxKeys > 0 && len(mc.items) >= mc.maxKeys {
		if _, exists := mc.items[fullKey]; !exists {
			mc.evictExpiredLocked(now.UnixNano())
			if len(mc.items) >= mc.maxKeys {
				return driver.ErrFull
			}
		}
	}

	if ttl == 0 {
		ttl = mc.defaultTTL
	}

	var expiration int64
	if ttl > 0 {
		expiration = now.Add(ttl).UnixNano()
	}

	mc.items[fullKey] = &item{url: url, expiration: expiration}

	return nil
}

// Delete removes a key
func (mc *MemoryCache) Delete(ctx context.Context, key string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	delete(mc.items, mc.keyPrefix+key)

	return nil
}

// Clear removes all keys under the prefix
func (mc *MemoryCache) Clear(ctx context.Context) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	if mc.keyPrefix == "" {
		mc.items = make(map[string]*item)
		return nil
	}

	for key := range mc.items {
		if strings.HasPrefix(key, mc.keyPrefix) {
			delete(mc.items, key)
		}
	}

	return nil
}

// Close stops the janitor. It is safe to call more than once.
func (mc *MemoryCache) Close() error {
	mc.closeOnce.Do(func() { close(mc.stopCleanup) })
	return nil
}

// Ping always succeeds
func (mc *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

// Len returns the number of stored entries, expired ones included
func (mc *MemoryCache) Len() int {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return len(mc.items)
}

func (mc *MemoryCache) cleanupExpired() {
	ticker := time.NewTicker(mc.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.Lock()
			mc.evictExpiredLocked(time.Now().UnixNano())
			mc.mu.Unlock()
		case <-mc.stopCleanup:
			return
		}
	}
}

func (mc *MemoryCache) evictExpiredLocked(now int64) {
	for key, it := range mc.items {
		if it.expired(now) {
			delete(mc.items, key)
		}
	}
}
