// Package krypto implements the digests behind delivery URL signatures and
// auth tokens.
//
// # URL signatures
//
// SignWithSecret hashes the payload concatenated with the API secret. The
// raw digest is encoded with Base64URLEncode and truncated by the caller:
//
//	raw, err := krypto.SignWithSecret("c_fill,w_100/sample.jpg", secret, krypto.SHA1)
//	sig := krypto.Base64URLEncode(raw)[:8]
//
// # Token HMACs
//
// HMACSHA256Hex signs token fields with a hex-encoded key and returns the
// lowercase hex MAC. VerifyHMACSHA256Hex compares in constant time.
package krypto
