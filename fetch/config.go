package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/gobeaver/beaver-media/config"
)

// S3Config holds the settings of an S3 bucket used as a fetch origin
type S3Config struct {
	Bucket string `env:"MEDIA_FETCH_S3_BUCKET"`
	Region string `env:"MEDIA_FETCH_S3_REGION,default:us-east-1"`

	// Endpoint targets S3 compatible stores such as MinIO
	Endpoint     string `env:"MEDIA_FETCH_S3_ENDPOINT"`
	UsePathStyle bool   `env:"MEDIA_FETCH_S3_USE_PATH_STYLE,default:false"`

	AccessKeyID     string `env:"MEDIA_FETCH_S3_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"MEDIA_FETCH_S3_SECRET_ACCESS_KEY"`

	// Prefix is prepended to every object key
	Prefix string `env:"MEDIA_FETCH_S3_PREFIX"`

	// Expiry is the lifetime of presigned object URLs
	Expiry time.Duration `env:"MEDIA_FETCH_S3_EXPIRY,default:15m"`
}

// GetConfig loads the S3 origin configuration from environment variables
func GetConfig(opts ...config.LoadOptions) (*S3Config, error) {
	cfg := &S3Config{}
	if err := config.Load(cfg, opts...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewS3Client creates an S3 client from cfg. Static credentials are used
// when both keys are set, the default AWS credential chain otherwise.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}), nil
}
