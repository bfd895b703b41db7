// Package cache stores analysis results so re-running notesift over
// unchanged documents skips classification (and NLP spend). Entries are
// keyed by a digest of the document text plus the classifier fingerprint,
// so editing the notes or the keyword config invalidates naturally.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from the document text and the classifier
// fingerprint (classifier name + rule configuration)
func Key(text, fingerprint string) string {
	hash := sha256.New()
	hash.Write([]byte(fingerprint))
	hash.Write([]byte{0})
	hash.Write([]byte(text))
	return "notesift:v1:" + hex.EncodeToString(hash.Sum(nil))
}
