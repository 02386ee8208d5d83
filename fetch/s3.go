// Package fetch turns objects in private storage into remote sources the
// delivery network can fetch.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gobeaver/beaver-media/asset"
)

// DefaultExpiry is the presigned URL lifetime when none is configured.
const DefaultExpiry = 15 * time.Minute

var (
	ErrEmptyKey    = errors.New("object key is required")
	ErrEmptyBucket = errors.New("bucket is required")
)

// S3Source presigns S3 objects so they can be delivered with the fetch
// delivery type.
type S3Source struct {
	presign *s3.PresignClient
	bucket  string
	prefix  string
	expiry  time.Duration
}

// S3Option configures an S3Source
type S3Option func(*S3Source)

// WithPrefix sets the prefix for object keys
func WithPrefix(prefix string) S3Option {
	return func(s *S3Source) {
		if prefix != "" && !strings.HasSuffix(prefix, "/") {
			prefix += "/"
		}
		s.prefix = prefix
	}
}

// WithExpiry sets the presigned URL lifetime
func WithExpiry(d time.Duration) S3Option {
	return func(s *S3Source) {
		if d > 0 {
			s.expiry = d
		}
	}
}

// NewS3Source creates a source for bucket
func NewS3Source(client *s3.Client, bucket string, options ...S3Option) (*S3Source, error) {
	if bucket == "" {
		return nil, ErrEmptyBucket
	}

	src := &S3Source{
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		expiry:  DefaultExpiry,
	}

	for _, option := range options {
		option(src)
	}

	return src, nil
}

// NewS3SourceFromConfig creates the client and source described by cfg
func NewS3SourceFromConfig(ctx context.Context, cfg S3Config) (*S3Source, error) {
	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3Source(client, cfg.Bucket, WithPrefix(cfg.Prefix), WithExpiry(cfg.Expiry))
}

// Expiry returns the lifetime of generated URLs
func (s *S3Source) Expiry() time.Duration {
	return s.expiry
}

// URL returns a presigned GET URL for key
func (s *S3Source) URL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	request, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path.Join(s.prefix, key)),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.expiry
	})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}

	return request.URL, nil
}

// Descriptor presigns key and wraps the URL as a fetch asset. opts may set
// the asset type; the delivery type is always fetch.
func (s *S3Source) Descriptor(ctx context.Context, key string, opts ...asset.Option) (asset.Descriptor, error) {
	u, err := s.URL(ctx, key)
	if err != nil {
		return asset.Descriptor{}, err
	}

	opts = append(opts, asset.WithDeliveryType(asset.Fetch))
	return asset.Parse(u, opts...), nil
}
