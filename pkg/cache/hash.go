package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// keyVersion is bumped whenever the rendering of a given DOT source changes,
// invalidating every stored artifact.
const keyVersion = "v1"

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey returns the cache key for the artifact rendered from DOT
// source with the given hash in the given format.
func ArtifactKey(dotHash, format string) string {
	return "artifact:" + keyVersion + ":" + format + ":" + dotHash
}
