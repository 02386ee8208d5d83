package krypto

import (
	"errors"
	"testing"
)

func TestSignWithSecret(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		secret  string
		algo    Algorithm
		want    string
	}{
		{
			name:    "sha1 public id only",
			payload: "sample.jpg",
			secret:  "api_secret",
			algo:    SHA1,
			want:    "qWHq1LZ6CA5Vzl0XzMeUlfHydPg=",
		},
		{
			name:    "sha1 with transformation",
			payload: "c_fill,w_100/sample.jpg",
			secret:  "api_secret",
			algo:    SHA1,
			want:    "OYVFnCSvm3BSTsGqeHCGKJJhwUc=",
		},
		{
			name:    "sha256 public id only",
			payload: "sample.jpg",
			secret:  "api_secret",
			algo:    SHA256,
			want:    "9bdGCd-QSzR8-3maaGZzXY1lFRf-62t4JL1MpnhkAts=",
		},
		{
			name:    "sha256 uses url-safe alphabet",
			payload: "",
			secret:  "x",
			algo:    SHA256,
			want:    "LXEWQrcmsEQBYnyp-6wy9chTD7GQPMTbAiWHF5IaSIE=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := SignWithSecret(tt.payload, tt.secret, tt.algo)
			if err != nil {
				t.Fatalf("SignWithSecret() error = %v", err)
			}
			if got := Base64URLEncode(raw); got != tt.want {
				t.Errorf("signature = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSignWithSecretUnsupportedAlgorithm(t *testing.T) {
	_, err := SignWithSecret("sample", "secret", Algorithm("md5"))
	if !errors.Is(err, ErrUnsupportedAlgorithm) {
		t.Errorf("expected ErrUnsupportedAlgorithm, got %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "sha1", want: SHA1},
		{in: "SHA-1", want: SHA1},
		{in: "sha256", want: SHA256},
		{in: "Sha-256", want: SHA256},
		{in: "md5", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlgorithm(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
