package authtoken

import "time"

// DefaultTokenName is the query parameter carrying the token.
const DefaultTokenName = "__cld_token__"

// Config defines the token generation settings.
type Config struct {
	// Key is the hex-encoded HMAC key. Tokens are disabled when empty.
	Key string `env:"MEDIA_AUTH_TOKEN_KEY"`

	// StartTime is the unix time the token becomes valid. Zero omits it.
	StartTime int64 `env:"MEDIA_AUTH_TOKEN_START_TIME"`

	// Expiration is the absolute unix expiry. Takes precedence over Duration.
	Expiration int64 `env:"MEDIA_AUTH_TOKEN_EXPIRATION"`

	// Duration is added to StartTime (or now) when Expiration is zero.
	Duration time.Duration `env:"MEDIA_AUTH_TOKEN_DURATION"`

	// IP restricts the token to a single client address.
	IP string `env:"MEDIA_AUTH_TOKEN_IP"`

	// ACL lists path patterns, e.g. "/image/authenticated/*".
	ACL []string `env:"MEDIA_AUTH_TOKEN_ACL"`

	// TokenName is the query parameter name.
	TokenName string `env:"MEDIA_AUTH_TOKEN_NAME,default:__cld_token__"`
}
