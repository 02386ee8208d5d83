package media

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gobeaver/beaver-media/asset"
	"github.com/gobeaver/beaver-media/authtoken"
	"github.com/gobeaver/beaver-media/cache"
	"github.com/gobeaver/beaver-media/config"
)

// Global instance management
var (
	defaultInstance *Builder
	defaultOnce     sync.Once
	defaultErr      error
)

// Define standard errors for the package
var (
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrNotInitialized      = errors.New("service not initialized")
	ErrInvalidAsset        = errors.New("invalid asset")
	ErrRootPathUnsupported = errors.New("root path only supported for image/upload")
	ErrSuffixUnsupported   = errors.New("url suffix not supported for this asset")
)

// Builder creates delivery URLs for one cloud
type Builder struct {
	cfg      Config
	token    *authtoken.Token
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithCache memoizes finalized URLs in c for up to ttl. A zero ttl defers
// to the cache's default.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(b *Builder) {
		b.cache = c
		b.cacheTTL = ttl
	}
}

// WithLogger sets the logger. Builders log nothing by default.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// PrefixBuilder loads configuration under a custom environment prefix
type PrefixBuilder struct {
	prefix string
}

// WithPrefix creates a PrefixBuilder for prefix, e.g. "STAGING_"
func WithPrefix(prefix string) *PrefixBuilder {
	return &PrefixBuilder{prefix: prefix}
}

// New creates a Builder from environment variables under the prefix
func (p *PrefixBuilder) New(opts ...Option) (*Builder, error) {
	cfg, err := GetConfig(config.WithPrefix(p.prefix))
	if err != nil {
		return nil, err
	}
	return New(*cfg, opts...)
}

// Init initializes the global instance with optional config
func Init(configs ...Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = &configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultInstance, defaultErr = New(*cfg)
	})

	return defaultErr
}

// New creates a new instance with given config
func New(cfg Config, opts ...Option) (*Builder, error) {
	if err := cfg.Cloud.resolveURL(); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	b := &Builder{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	if cfg.AuthToken.Key != "" {
		b.token = authtoken.New(cfg.AuthToken)
	}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg Config) error {
	if cfg.Cloud.CloudName == "" {
		return fmt.Errorf("cloud name required")
	}

	if cfg.URL.SignURL && cfg.AuthToken.Key == "" && cfg.Cloud.APISecret == "" {
		return fmt.Errorf("api secret required to sign urls")
	}

	if cfg.AuthToken.Key != "" && cfg.AuthToken.Expiration == 0 && cfg.AuthToken.Duration <= 0 {
		return fmt.Errorf("auth token requires an expiration or a duration")
	}

	return nil
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultInstance = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}

// Service returns the global builder instance, initializing it from the
// environment on first use. It returns nil when initialization failed.
func Service() *Builder {
	if err := Init(); err != nil {
		return nil
	}
	return defaultInstance
}

// Config returns a copy of the builder configuration
func (b *Builder) Config() Config {
	return b.cfg
}

// Asset starts a URL for the given descriptor
func (b *Builder) Asset(d asset.Descriptor) *Asset {
	return &Asset{
		builder:    b,
		descriptor: d,
		urlConfig:  b.cfg.URL,
	}
}

// Image starts a URL for an uploaded image, e.g. "folder/sample.jpg"
func (b *Builder) Image(source string) *Asset {
	return b.Asset(asset.Parse(source, asset.WithAssetType(asset.Image)))
}

// Video starts a URL for an uploaded video
func (b *Builder) Video(source string) *Asset {
	return b.Asset(asset.Parse(source, asset.WithAssetType(asset.Video)))
}

// File starts a URL for an uploaded raw file
func (b *Builder) File(source string) *Asset {
	return b.Asset(asset.Parse(source, asset.WithAssetType(asset.Raw)))
}

// Fetch starts a URL that delivers a remote image through the CDN
func (b *Builder) Fetch(remoteURL string) *Asset {
	return b.Asset(asset.Parse(remoteURL, asset.WithDeliveryType(asset.Fetch)))
}

// RemoteSource resolves storage keys into remote fetch descriptors, e.g.
// fetch.S3Source.
type RemoteSource interface {
	Descriptor(ctx context.Context, key string, opts ...asset.Option) (asset.Descriptor, error)
}

// Remote starts a fetch URL for key resolved through src
func (b *Builder) Remote(ctx context.Context, src RemoteSource, key string, opts ...asset.Option) (*Asset, error) {
	d, err := src.Descriptor(ctx, key, opts...)
	if err != nil {
		return nil, fmt.Errorf("resolve remote source: %w", err)
	}
	return b.Asset(d), nil
}
