package krypto

import (
	"errors"
	"testing"
)

const testHexKey = "00112233445566778899aabbccddeeff"

func TestHMACSHA256Hex(t *testing.T) {
	got, err := HMACSHA256Hex("exp=1700000000~acl=/image/*", testHexKey)
	if err != nil {
		t.Fatalf("HMACSHA256Hex() error = %v", err)
	}

	want := "9c9dc0fb19ef03013300f7c39205111001f65213c2b9e34358c9854b0e15d566"
	if got != want {
		t.Errorf("HMACSHA256Hex() = %s, want %s", got, want)
	}
}

func TestHMACSHA256HexInvalidKey(t *testing.T) {
	_, err := HMACSHA256Hex("message", "not-hex")
	if !errors.Is(err, ErrInvalidKey) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestVerifyHMACSHA256Hex(t *testing.T) {
	message := "exp=1700000000~acl=/image/*"
	sig, err := HMACSHA256Hex(message, testHexKey)
	if err != nil {
		t.Fatalf("HMACSHA256Hex() error = %v", err)
	}

	if !VerifyHMACSHA256Hex(message, testHexKey, sig) {
		t.Error("valid signature rejected")
	}
	if VerifyHMACSHA256Hex(message+"~tampered", testHexKey, sig) {
		t.Error("tampered message accepted")
	}
	if VerifyHMACSHA256Hex(message, "zz", sig) {
		t.Error("invalid key accepted")
	}
}
