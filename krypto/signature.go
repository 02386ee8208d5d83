package krypto

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strings"
)

// Algorithm names a digest used for delivery URL signatures.
type Algorithm string

const (
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
)

// ErrUnsupportedAlgorithm is returned for digests other than SHA1 and SHA256.
var ErrUnsupportedAlgorithm = errors.New("unsupported signature algorithm")

// ParseAlgorithm maps a configuration string to an Algorithm. Matching is
// case-insensitive and ignores a dash, so "SHA-256" is accepted.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ReplaceAll(strings.ToLower(s), "-", "")) {
	case SHA1:
		return SHA1, nil
	case SHA256:
		return SHA256, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, s)
}

func (a Algorithm) newHash() (hash.Hash, error) {
	switch a {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, a)
}

// SignWithSecret digests the payload with the secret appended to it and
// returns the raw digest bytes.
//
// This is the delivery API's URL signature scheme, not an HMAC: the secret
// is concatenated to the payload before hashing.
//
// Parameters:
//
//	payload: The string to sign, usually "<transformation>/<public id>".
//	secret: The account API secret.
//	algo: SHA1 for short signatures, SHA256 for long ones.
//
// Returns:
//
//	[]byte: The raw digest.
//	error: ErrUnsupportedAlgorithm for an unknown algo.
func SignWithSecret(payload, secret string, algo Algorithm) ([]byte, error) {
	h, err := algo.newHash()
	if err != nil {
		return nil, err
	}
	h.Write([]byte(payload))
	h.Write([]byte(secret))
	return h.Sum(nil), nil
}

// Base64URLEncode encodes b with the URL-safe alphabet and keeps padding.
func Base64URLEncode(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}
