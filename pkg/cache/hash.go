package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKey derives the cache key for one rendered artifact. Everything
// that changes the output bytes must feed the key: the plate kind, the
// latitude, the output format, and a digest of the full configuration.
func ArtifactKey(kind string, latitude float64, format string, cfg any) string {
	cfgJSON, _ := json.Marshal(cfg)
	payload := fmt.Sprintf("%s|%.4f|%s|%s", kind, latitude, format, Hash(cfgJSON))
	return "artifact:" + Hash([]byte(payload))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
