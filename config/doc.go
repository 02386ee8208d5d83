// Package config loads struct-based configuration from environment variables
// with support for custom prefixes, automatic type conversion, and .env files.
//
// # Basic Usage
//
// Define a configuration struct with environment variable tags:
//
//	type Config struct {
//	    CloudName string        `env:"MEDIA_CLOUD_NAME,required"`
//	    Secure    bool          `env:"MEDIA_SECURE,default:true"`
//	    CacheTTL  time.Duration `env:"MEDIA_CACHE_TTL,default:10m"`
//	    ACL       []string      `env:"MEDIA_AUTH_TOKEN_ACL"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Custom Prefixes
//
// Every name is prefixed with BEAVER_ unless another prefix is given:
//
//	// Looks for STAGING_MEDIA_CLOUD_NAME, STAGING_MEDIA_SECURE, ...
//	err := config.Load(&cfg, config.WithPrefix("STAGING_"))
//
// Packages built on this loader expose the same choice through a builder:
//
//	b, err := media.WithPrefix("STAGING_").New()
//
// # Field Tags
//
//   - `env:"VAR_NAME"`: environment variable name (before prefixing)
//   - `env:"VAR_NAME,default:value"`: value used when the variable is unset
//   - `env:"VAR_NAME,required"`: Load fails with ErrRequired when nothing resolves
//
// # Supported Types
//
// string, int, int64, bool, time.Duration and []string (comma separated).
// Fields of other kinds are left untouched.
//
// # Environment File Support
//
// A .env file in the working directory is read before the environment.
// Variables already present in the process environment take precedence.
//
// # Debug Mode
//
// Set BEAVER_CONFIG_DEBUG=true or LoadOptions.Debug to print every resolved
// variable. Values of variables whose names contain SECRET or KEY are masked.
package config
