package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...interface{}) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Keyer builds cache keys for the rendering stages.
type Keyer interface {
	// HighlightKey identifies highlighted markup for a code snippet.
	HighlightKey(lang, style, code string) string
	// PageKey identifies a rendered page by route and content hash.
	PageKey(route, contentHash string) string
}

// DefaultKeyer hashes all key inputs with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default Keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HighlightKey implements Keyer.
func (DefaultKeyer) HighlightKey(lang, style, code string) string {
	return hashKey("highlight", lang, style, code)
}

// PageKey implements Keyer.
func (DefaultKeyer) PageKey(route, contentHash string) string {
	return hashKey("page", route, contentHash)
}
