package shared

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins non-empty parts with ":".
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, cacheKeySeparator)
}

// BuildHashedCacheKey keys a request payload by the SHA-256 of its JSON encoding, so
// arbitrary user text never ends up inside a Redis key.
func BuildHashedCacheKey(prefix, operation string, payload any) string {
	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to marshal cache key payload")

		return ""
	}

	sum := sha256.Sum256(raw)

	return BuildCacheKey(prefix, operation, hex.EncodeToString(sum[:]))
}
