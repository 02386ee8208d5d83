package cache

import (
	"strings"
	"time"

	"github.com/gobeaver/beaver-media/config"
)

// Config holds URL cache configuration
type Config struct {
	// Driver specifies cache backend: "memory" or "redis"
	Driver string `env:"MEDIA_CACHE_DRIVER,default:memory"`

	// Redis specific settings
	Host     string `env:"MEDIA_CACHE_HOST,default:localhost"`
	Port     string `env:"MEDIA_CACHE_PORT,default:6379"`
	Password string `env:"MEDIA_CACHE_PASSWORD"`
	Database int    `env:"MEDIA_CACHE_DATABASE,default:0"`

	// Connection URL (overrides host/port/password)
	URL string `env:"MEDIA_CACHE_URL"`

	MaxRetries   int `env:"MEDIA_CACHE_MAX_RETRIES,default:3"`
	PoolSize     int `env:"MEDIA_CACHE_POOL_SIZE,default:10"`
	MinIdleConns int `env:"MEDIA_CACHE_MIN_IDLE_CONNS,default:2"`

	UseTLS bool `env:"MEDIA_CACHE_USE_TLS,default:false"`

	// Memory cache specific
	MaxKeys         int           `env:"MEDIA_CACHE_MAX_KEYS,default:10000"`
	CleanupInterval time.Duration `env:"MEDIA_CACHE_CLEANUP_INTERVAL,default:1m"`

	// DefaultTTL applies to entries stored with a zero ttl
	DefaultTTL time.Duration `env:"MEDIA_CACHE_DEFAULT_TTL,default:1h"`

	// KeyPrefix namespaces every key
	KeyPrefix string `env:"MEDIA_CACHE_KEY_PREFIX,default:media:url:"`
}

// GetConfig loads configuration from environment variables
func GetConfig(opts ...config.LoadOptions) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg, opts...); err != nil {
		return nil, err
	}

	cfg.Driver = strings.ToLower(cfg.Driver)

	return cfg, nil
}
