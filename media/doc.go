// Package media builds delivery URLs for assets hosted on a media delivery
// network, with optional signatures, auth tokens and shortened paths.
//
// # Quick Start
//
// Initialize the builder from environment variables (BEAVER_MEDIA_URL or
// BEAVER_MEDIA_CLOUD_NAME, BEAVER_MEDIA_API_KEY, BEAVER_MEDIA_API_SECRET):
//
//	import "github.com/gobeaver/beaver-media/media"
//
//	if err := media.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	u, err := media.Service().Image("folder/sample.jpg").ToURL(ctx)
//	// https://res.cloudinary.com/demo/image/upload/v1/folder/sample.jpg
//
// # Transformations and Signatures
//
//	cfg := media.Config{
//	    Cloud: media.CloudConfig{CloudName: "demo", APISecret: secret},
//	    URL:   media.DefaultURLConfig(),
//	}
//	cfg.URL.SignURL = true
//
//	b, err := media.New(cfg)
//	u, err := b.Image("sample.jpg").
//	    Transform(transformation.New("c_fill,w_100")).
//	    ToURL(ctx)
//	// https://res.cloudinary.com/demo/image/upload/s--OYVFnCSv--/c_fill,w_100/sample.jpg
//
// The signature covers the asset's own transformation and the public ID
// with its extension; transformations passed to ToURLWith are not signed.
// When an auth token key is configured the signature is replaced by a token
// query parameter.
//
// # URL Shapes
//
// URLConfig controls the host and path layout:
//   - Shorten turns image/upload into iu
//   - UseRootPath drops asset and delivery type for image/upload
//   - PrivateCDN, SecureDistribution and CName change the host
//   - Asset.Suffix adds an SEO suffix, e.g. /images/abc/my-cat.jpg
//
// # Caching
//
// Built URLs can be memoized in a cache.Cache:
//
//	c, _ := cache.New(cache.Config{Driver: "redis", URL: "redis://localhost:6379/0"})
//	b, err := media.New(cfg, media.WithCache(c, time.Hour), media.WithLogger(logger))
//
// Token URLs are never cached past their expiry.
package media
