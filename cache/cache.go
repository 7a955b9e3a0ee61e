// Package cache provides bounded translation caching with LRU eviction and
// TTL expiration.
package cache

import "time"

const (
	// DefaultMaxSize is the default entry bound before LRU eviction.
	DefaultMaxSize = 5000

	// DefaultTTL is the default entry lifetime (7 days).
	DefaultTTL = 7 * 24 * time.Hour

	// NoExpiration as a Set TTL stores an entry that never expires.
	NoExpiration = time.Duration(-1)
)

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	// Get retrieves a cached translation for (text, targetLang). Returns
	// false if absent or expired. A hit marks the entry most recently used.
	Get(text, targetLang string) (*Entry, bool)

	// Set stores a translation. A ttl of 0 uses the cache's default;
	// NoExpiration stores the entry without expiry.
	Set(text, targetLang, translatedText, sourceLang string, ttl time.Duration) error
}

// Stats is a consistent snapshot of cache counters.
type Stats struct {
	Size      int     // Current number of entries
	MaxSize   int     // Entry bound before eviction
	Hits      uint64  // Lookups that returned a valid entry
	Misses    uint64  // Lookups that found nothing (or an expired entry)
	Evictions uint64  // Entries removed to make room
	HitRate   float64 // Hits / (Hits + Misses), 0 when no lookups yet
}
