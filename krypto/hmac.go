package krypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when an HMAC key is not valid hex.
var ErrInvalidKey = errors.New("invalid hex key")

// HMACSHA256Hex computes HMAC-SHA256 of message with a hex-encoded key and
// returns the lowercase hex digest.
func HMACSHA256Hex(message, hexKey string) (string, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// VerifyHMACSHA256Hex reports whether signature is the HMAC-SHA256 of
// message under hexKey. The comparison is constant time.
func VerifyHMACSHA256Hex(message, hexKey, signature string) bool {
	expected, err := HMACSHA256Hex(message, hexKey)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(expected), []byte(signature))
}
