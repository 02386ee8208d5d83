package cache

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Key derives a fixed-length cache key from parts. Parts are length
// prefixed so ("ab", "c") and ("a", "bc") never collide.
func Key(parts ...string) string {
	h := blake3.New()
	var size [8]byte
	for _, p := range parts {
		n := uint64(len(p))
		for i := range size {
			size[i] = byte(n >> (8 * i))
		}
		h.Write(size[:])
		h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:16])
}
