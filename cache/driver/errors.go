// Package driver holds what the cache drivers share.
package driver

import "errors"

var (
	// ErrMiss is returned by Get when a key is absent or expired.
	ErrMiss = errors.New("cache miss")

	// ErrFull is returned by Set when a size or key limit would be exceeded.
	ErrFull = errors.New("cache full")
)
