package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPrefix is prepended to every environment variable name unless a
// different prefix is supplied through LoadOptions.
const DefaultPrefix = "BEAVER_"

// ErrRequired is returned when a field tagged `required` has neither an
// environment value nor a default.
var ErrRequired = errors.New("required configuration value missing")

// LoadOptions defines options for loading configuration from environment variables.
type LoadOptions struct {
	Prefix string // Prefix to prepend to environment variable names (default: "BEAVER_")
	Debug  bool   // Print every resolved variable to stdout
}

// WithPrefix returns LoadOptions using the given prefix.
//
//	err := config.Load(&cfg, config.WithPrefix("STAGING_"))
func WithPrefix(prefix string) LoadOptions {
	return LoadOptions{Prefix: prefix}
}

// Load populates a struct from .env file and environment variables using reflection.
// A .env file in the working directory is loaded first; variables that are
// already set in the process environment win over the file.
//
// The function uses struct field tags to determine environment variable names:
//   - `env:"VAR_NAME"`: Maps the field to the specified environment variable
//   - `env:"VAR_NAME,default:value"`: Provides a default value if env var is not set
//   - `env:"VAR_NAME,required"`: Fails with ErrRequired when no value resolves
//
// Example:
//
//	type Config struct {
//	    CloudName string `env:"MEDIA_CLOUD_NAME,required"`
//	    Secure    bool   `env:"MEDIA_SECURE,default:true"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("MYAPP_"))
//	// Will look for MYAPP_MEDIA_CLOUD_NAME, MYAPP_MEDIA_SECURE
func Load(cfg interface{}, opts ...LoadOptions) error {
	options := LoadOptions{Prefix: DefaultPrefix}
	if len(opts) > 0 {
		options = opts[0]
	}

	rv := reflect.ValueOf(cfg)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config: expected pointer to struct, got %T", cfg)
	}

	// Silently try to load .env file, ignore if not found
	_ = godotenv.Load()

	printDebug := options.Debug || os.Getenv(DefaultPrefix+"CONFIG_DEBUG") == "true"

	return loadStruct(rv.Elem(), options.Prefix, printDebug)
}

// loadStruct fills the tagged fields of v. Untagged struct fields are
// descended into so packages can compose their configs.
func loadStruct(v reflect.Value, prefix string, printDebug bool) error {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		envTag := field.Tag.Get("env")
		if envTag == "" {
			if field.Type.Kind() == reflect.Struct {
				if err := loadStruct(v.Field(i), prefix, printDebug); err != nil {
					return err
				}
			}
			continue
		}

		envName, defaultValue, required := parseTag(envTag)

		fullEnvName := prefix + envName
		value := os.Getenv(fullEnvName)
		if value == "" {
			value = defaultValue
		}
		if printDebug {
			fmt.Printf("[BEAVER] %s=%s\n", fullEnvName, redact(fullEnvName, value))
		}

		if value == "" {
			if required {
				return fmt.Errorf("%w: %s", ErrRequired, fullEnvName)
			}
			continue
		}

		if err := setFieldValue(v.Field(i), value); err != nil {
			return fmt.Errorf("config: %s: %w", fullEnvName, err)
		}
	}

	return nil
}

// parseTag splits `NAME,default:x,required` into its parts. Unknown options
// are ignored.
func parseTag(tag string) (name, defaultValue string, required bool) {
	parts := strings.Split(tag, ",")
	name = parts[0]

	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "default:"):
			defaultValue = strings.TrimPrefix(part, "default:")
		case part == "required":
			required = true
		}
	}

	return name, defaultValue, required
}

func redact(name, value string) string {
	upper := strings.ToUpper(name)
	if value != "" && (strings.Contains(upper, "SECRET") || strings.Contains(upper, "KEY")) {
		return "****"
	}
	return value
}

// setFieldValue converts the string value of an environment variable to the
// field's type.
//
// Supported types:
//   - string: Direct assignment
//   - int, int64: Parsed using strconv.ParseInt with base 10
//   - bool: Parsed using strconv.ParseBool (supports "true", "false", "1", "0", etc.)
//   - time.Duration: Parsed using time.ParseDuration
//   - []string: Comma-separated, blank items dropped
//
// Unsupported kinds are skipped silently.
func setFieldValue(field reflect.Value, value string) error {
	// Check for time.Duration first
	if field.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(i)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return nil
		}
		var items []string
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
		field.Set(reflect.ValueOf(items).Convert(field.Type()))
	default:
		return nil
	}
	return nil
}
