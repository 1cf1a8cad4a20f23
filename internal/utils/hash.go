// Package utils provides general-purpose helper utilities used across
// different parts of the verifier: UVCI hashing and unique identifier
// generation.
package utils

import (
	"crypto/sha256"
	"encoding/base64"
)

// HashUVCI computes the SHA-256 digest of a literal UVCI and returns it
// base64-encoded. The revocation list stores and serves identifiers in this
// form, so lookups against the revocation set must hash first.
func HashUVCI(uvci string) string {
	sum := sha256.Sum256([]byte(uvci))
	return base64.StdEncoding.EncodeToString(sum[:])
}
