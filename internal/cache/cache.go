// Package cache stores record-store API responses so repeated renders
// within a TTL reuse the last pull instead of hitting the API again.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with per-entry TTLs.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a request URL. Hashing keeps API keys
// and query parameters out of cache file names.
func Key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return "caseglance:v1:" + hex.EncodeToString(sum[:])
}
