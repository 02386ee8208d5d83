package cache

import (
	"errors"
	"fmt"

	"github.com/gobeaver/beaver-media/cache/driver"
	"github.com/gobeaver/beaver-media/cache/driver/memory"
	"github.com/gobeaver/beaver-media/cache/driver/redis"
	"github.com/gobeaver/beaver-media/config"
)

var (
	ErrMiss          = driver.ErrMiss
	ErrFull          = driver.ErrFull
	ErrInvalidDriver = errors.New("invalid cache driver")
)

// Builder creates caches from environment variables under a custom prefix
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// New creates a new cache instance using the builder's prefix
func (b *Builder) New() (Cache, error) {
	cfg, err := GetConfig(config.WithPrefix(b.prefix))
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}

// New creates a new cache instance with given config
func New(cfg Config) (Cache, error) {
	switch cfg.Driver {
	case "", "memory":
		return memory.New(memory.Config{
			MaxKeys:         cfg.MaxKeys,
			DefaultTTL:      cfg.DefaultTTL,
			CleanupInterval: cfg.CleanupInterval,
			KeyPrefix:       cfg.KeyPrefix,
		}), nil
	case "redis":
		return redis.New(redis.Config{
			Host:         cfg.Host,
			Port:         cfg.Port,
			Password:     cfg.Password,
			Database:     cfg.Database,
			URL:          cfg.URL,
			MaxRetries:   cfg.MaxRetries,
			PoolSize:     cfg.PoolSize,
			MinIdleConns: cfg.MinIdleConns,
			UseTLS:       cfg.UseTLS,
			DefaultTTL:   cfg.DefaultTTL,
			KeyPrefix:    cfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDriver, cfg.Driver)
	}
}

// NewFromEnv creates cache instance from environment variables
func NewFromEnv() (Cache, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(*cfg)
}
