package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash returns the SHA-256 digest of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey derives a namespaced cache key from arbitrary components. Each
// component is folded into the digest with a NUL separator so adjacent
// values cannot run together.
func hashKey(prefix string, parts ...any) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%v\x00", p)
	}
	return prefix + ":" + hex.EncodeToString(h.Sum(nil))
}
