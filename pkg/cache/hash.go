package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ArtifactKey derives the cache key of a converted artifact from the output
// format, the source document it is converted from and any settings that
// change the result (such as the PNG scale). The key format is
// "artifact:<format>:<sha256>".
func ArtifactKey(format string, source []byte, settings ...any) string {
	h := sha256.New()
	h.Write(source)
	if len(settings) > 0 {
		data, _ := json.Marshal(settings)
		h.Write([]byte{0})
		h.Write(data)
	}
	return fmt.Sprintf("artifact:%s:%s", format, hex.EncodeToString(h.Sum(nil)))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
