package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gobeaver/beaver-media/cache"
	"github.com/gobeaver/beaver-media/config"
	"github.com/gobeaver/beaver-media/fetch"
	"github.com/gobeaver/beaver-media/media"
)

// settings is the resolved configuration of a command run
type settings struct {
	Media media.Config
	Cache cache.Config
	S3    fetch.S3Config
}

// profile mirrors settings in a YAML file. Unset keys leave the
// environment value in place.
type profile struct {
	Cloud struct {
		CloudName string `yaml:"cloud_name"`
		APIKey    string `yaml:"api_key"`
		APISecret string `yaml:"api_secret"`
		URL       string `yaml:"url"`
	} `yaml:"cloud"`

	URL struct {
		Secure                        *bool  `yaml:"secure"`
		DeliveryHost                  string `yaml:"delivery_host"`
		CName                         string `yaml:"cname"`
		PrivateCDN                    *bool  `yaml:"private_cdn"`
		SecureDistribution            string `yaml:"secure_distribution"`
		SignURL                       *bool  `yaml:"sign_url"`
		LongURLSignature              *bool  `yaml:"long_url_signature"`
		Shorten                       *bool  `yaml:"shorten"`
		UseRootPath                   *bool  `yaml:"use_root_path"`
		ForceVersion                  *bool  `yaml:"force_version"`
		ResponsiveWidth               *bool  `yaml:"responsive_width"`
		ResponsiveWidthTransformation string `yaml:"responsive_width_transformation"`
	} `yaml:"url"`

	AuthToken struct {
		Key        string        `yaml:"key"`
		StartTime  int64         `yaml:"start_time"`
		Expiration int64         `yaml:"expiration"`
		Duration   time.Duration `yaml:"duration"`
		IP         string        `yaml:"ip"`
		ACL        []string      `yaml:"acl"`
		TokenName  string        `yaml:"token_name"`
	} `yaml:"auth_token"`

	Cache struct {
		Driver     string        `yaml:"driver"`
		URL        string        `yaml:"url"`
		KeyPrefix  string        `yaml:"key_prefix"`
		DefaultTTL time.Duration `yaml:"default_ttl"`
	} `yaml:"cache"`

	S3 struct {
		Bucket          string        `yaml:"bucket"`
		Region          string        `yaml:"region"`
		Endpoint        string        `yaml:"endpoint"`
		UsePathStyle    *bool         `yaml:"use_path_style"`
		AccessKeyID     string        `yaml:"access_key_id"`
		SecretAccessKey string        `yaml:"secret_access_key"`
		Prefix          string        `yaml:"prefix"`
		Expiry          time.Duration `yaml:"expiry"`
	} `yaml:"s3"`
}

func loadSettings(opts *options) (*settings, error) {
	load := config.WithPrefix(opts.envPrefix)

	mediaCfg, err := media.GetConfig(load)
	if err != nil {
		return nil, fmt.Errorf("load media config: %w", err)
	}
	cacheCfg, err := cache.GetConfig(load)
	if err != nil {
		return nil, fmt.Errorf("load cache config: %w", err)
	}
	s3Cfg, err := fetch.GetConfig(load)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	s := &settings{Media: *mediaCfg, Cache: *cacheCfg, S3: *s3Cfg}

	if opts.profile != "" {
		p, err := readProfile(opts.profile)
		if err != nil {
			return nil, err
		}
		p.apply(s)
		opts.logger.Debug("profile applied")
	}

	return s, nil
}

func readProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	p := &profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

func (p *profile) apply(s *settings) {
	c := &s.Media.Cloud
	if p.Cloud.CloudName != "" || p.Cloud.APIKey != "" || p.Cloud.APISecret != "" {
		// explicit credentials win over a cloud URL from the environment
		c.URL = ""
	}
	setString(&c.CloudName, p.Cloud.CloudName)
	setString(&c.APIKey, p.Cloud.APIKey)
	setString(&c.APISecret, p.Cloud.APISecret)
	setString(&c.URL, p.Cloud.URL)

	u := &s.Media.URL
	setBool(&u.Secure, p.URL.Secure)
	setString(&u.DeliveryHost, p.URL.DeliveryHost)
	setString(&u.CName, p.URL.CName)
	setBool(&u.PrivateCDN, p.URL.PrivateCDN)
	setString(&u.SecureDistribution, p.URL.SecureDistribution)
	setBool(&u.SignURL, p.URL.SignURL)
	setBool(&u.LongURLSignature, p.URL.LongURLSignature)
	setBool(&u.Shorten, p.URL.Shorten)
	setBool(&u.UseRootPath, p.URL.UseRootPath)
	setBool(&u.ForceVersion, p.URL.ForceVersion)
	setBool(&u.ResponsiveWidth, p.URL.ResponsiveWidth)
	setString(&u.ResponsiveWidthTransformation, p.URL.ResponsiveWidthTransformation)

	t := &s.Media.AuthToken
	setString(&t.Key, p.AuthToken.Key)
	if p.AuthToken.StartTime != 0 {
		t.StartTime = p.AuthToken.StartTime
	}
	if p.AuthToken.Expiration != 0 {
		t.Expiration = p.AuthToken.Expiration
	}
	if p.AuthToken.Duration != 0 {
		t.Duration = p.AuthToken.Duration
	}
	setString(&t.IP, p.AuthToken.IP)
	if len(p.AuthToken.ACL) > 0 {
		t.ACL = p.AuthToken.ACL
	}
	setString(&t.TokenName, p.AuthToken.TokenName)

	setString(&s.Cache.Driver, p.Cache.Driver)
	setString(&s.Cache.URL, p.Cache.URL)
	setString(&s.Cache.KeyPrefix, p.Cache.KeyPrefix)
	if p.Cache.DefaultTTL != 0 {
		s.Cache.DefaultTTL = p.Cache.DefaultTTL
	}

	setString(&s.S3.Bucket, p.S3.Bucket)
	setString(&s.S3.Region, p.S3.Region)
	setString(&s.S3.Endpoint, p.S3.Endpoint)
	setBool(&s.S3.UsePathStyle, p.S3.UsePathStyle)
	setString(&s.S3.AccessKeyID, p.S3.AccessKeyID)
	setString(&s.S3.SecretAccessKey, p.S3.SecretAccessKey)
	setString(&s.S3.Prefix, p.S3.Prefix)
	if p.S3.Expiry != 0 {
		s.S3.Expiry = p.S3.Expiry
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
