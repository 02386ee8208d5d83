package media

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gobeaver/beaver-media/asset"
	"github.com/gobeaver/beaver-media/cache"
	"github.com/gobeaver/beaver-media/transformation"
)

// tokenCacheMargin keeps cached token URLs from being served right before
// the token expires.
const tokenCacheMargin = 30 * time.Second

// Asset is a deliverable asset bound to a Builder. Methods that change it
// return a modified copy, so an Asset can be shared and derived from.
type Asset struct {
	builder        *Builder
	descriptor     asset.Descriptor
	transformation *transformation.Transformation
	urlConfig      URLConfig
}

// Descriptor returns the asset descriptor
func (a *Asset) Descriptor() asset.Descriptor {
	return a.descriptor
}

// Transformation returns a copy of the asset's own transformation chain
func (a *Asset) Transformation() *transformation.Transformation {
	return a.transformation.Clone()
}

// Transform returns a copy of the asset using t as its transformation
func (a *Asset) Transform(t *transformation.Transformation) *Asset {
	c := *a
	c.transformation = t.Clone()
	return &c
}

// Version returns a copy of the asset pinned to version v
func (a *Asset) Version(v string) *Asset {
	c := *a
	asset.WithVersion(v)(&c.descriptor)
	return &c
}

// Suffix returns a copy of the asset with an SEO suffix
func (a *Asset) Suffix(s string) *Asset {
	c := *a
	c.descriptor.Suffix = s
	return &c
}

// Configure returns a copy of the asset with its URL configuration adjusted
// by fn. The builder configuration is not affected.
//
//	signed := img.Configure(func(c *media.URLConfig) { c.SignURL = true })
func (a *Asset) Configure(fn func(*URLConfig)) *Asset {
	c := *a
	fn(&c.urlConfig)
	return &c
}

// Path returns the finalized path component: asset and delivery type,
// signature, transformation, version and source, without host or cloud
// name.
func (a *Asset) Path(with *transformation.Transformation, appendMode bool) (string, error) {
	if err := a.descriptor.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}

	assetType, deliveryType, err := a.finalizeAssetType()
	if err != nil {
		return "", err
	}

	signature, err := a.finalizeSimpleSignature()
	if err != nil {
		return "", err
	}

	return implodeURL(
		assetType,
		deliveryType,
		signature,
		a.finalizeTransformation(with, appendMode),
		a.finalizeVersion(),
		a.finalizeSource(),
	), nil
}

// ToURL builds the delivery URL using the asset's own transformation
func (a *Asset) ToURL(ctx context.Context) (string, error) {
	return a.ToURLWith(ctx, nil, true)
}

// ToURLWith builds the delivery URL with an additional transformation that
// is appended to, or replaces, the asset's own.
func (a *Asset) ToURLWith(ctx context.Context, with *transformation.Transformation, appendMode bool) (string, error) {
	key := a.cacheKey(with, appendMode)
	if a.builder.cache != nil {
		cached, err := a.builder.cache.Get(ctx, key)
		switch {
		case err == nil:
			return cached, nil
		case !errors.Is(err, cache.ErrMiss):
			a.builder.logger.Warn("url cache get failed", zap.Error(err))
		}
	}

	built, err := a.build(with, appendMode)
	if err != nil {
		return "", err
	}

	if a.builder.cache != nil {
		a.store(ctx, key, built)
	}

	return built, nil
}

// String returns the delivery URL or an empty string when it cannot be
// built.
func (a *Asset) String() string {
	u, err := a.build(nil, true)
	if err != nil {
		a.builder.logger.Debug("delivery url not built",
			zap.Stringer("asset", a.descriptor),
			zap.Error(err),
		)
		return ""
	}
	return u
}

func (a *Asset) build(with *transformation.Transformation, appendMode bool) (string, error) {
	path, err := a.Path(with, appendMode)
	if err != nil {
		return "", err
	}

	prefix, pathPrefix := a.finalizeDistribution()
	fullPath := pathPrefix + "/" + path
	u := prefix + fullPath

	tokenUsed := false
	if a.urlConfig.SignURL && a.builder.token.IsEnabled() {
		token, err := a.builder.token.Generate(fullPath)
		if err != nil {
			return "", fmt.Errorf("generate auth token: %w", err)
		}
		u += "?" + token
		tokenUsed = true
	}

	a.builder.logger.Debug("built delivery url",
		zap.Stringer("asset", a.descriptor),
		zap.Bool("signed", a.urlConfig.SignURL),
		zap.Bool("token", tokenUsed),
		zap.Bool("shorten", a.urlConfig.Shorten),
	)

	return u, nil
}

func (a *Asset) store(ctx context.Context, key, built string) {
	ttl := a.builder.cacheTTL

	if a.urlConfig.SignURL && a.builder.token.IsEnabled() {
		exp, err := a.builder.token.ExpiresAt()
		if err != nil {
			return
		}
		remaining := time.Until(exp) - tokenCacheMargin
		if remaining <= 0 {
			return
		}
		if ttl == 0 || remaining < ttl {
			ttl = remaining
		}
	}

	if err := a.builder.cache.Set(ctx, key, built, ttl); err != nil {
		a.builder.logger.Warn("url cache set failed", zap.Error(err))
	}
}

// cacheKey covers everything that shapes the URL, the auth token setup
// included. The API secret is not part of it; rotating secrets requires
// clearing the cache. The token key only enters as a digest.
func (a *Asset) cacheKey(with *transformation.Transformation, appendMode bool) string {
	d := a.descriptor
	tc := a.builder.cfg.AuthToken

	tokenKey := ""
	if tc.Key != "" {
		tokenKey = cache.Key(tc.Key)
	}

	return cache.Key(
		a.builder.cfg.Cloud.CloudName,
		a.builder.cfg.Cloud.APIKey,
		string(d.AssetType),
		string(d.DeliveryType),
		d.PublicID,
		d.Extension,
		d.Suffix,
		d.Version,
		a.transformation.String(),
		with.String(),
		strconv.FormatBool(appendMode),
		fmt.Sprintf("%+v", a.urlConfig),
		strconv.FormatBool(a.builder.token.IsEnabled()),
		tokenKey,
		a.builder.token.Name(),
		tc.IP,
		strings.Join(tc.ACL, "!"),
		strconv.FormatInt(tc.StartTime, 10),
		strconv.FormatInt(tc.Expiration, 10),
		tc.Duration.String(),
	)
}
