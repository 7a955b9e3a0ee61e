package cache

import "time"

// Entry is a single cached translation. Entries are immutable after
// insertion; the cache owns them exclusively.
type Entry struct {
	TranslatedText string        `json:"translated_text"`
	SourceLanguage string        `json:"source_language"` // code or "auto"
	TargetLanguage string        `json:"target_language"`
	CreatedAt      time.Time     `json:"created_at"`
	TTL            time.Duration `json:"ttl"` // 0 = never expires
}

// Expired reports whether the entry's TTL has elapsed.
func (e *Entry) Expired() bool {
	if e.TTL <= 0 {
		return false
	}
	return time.Since(e.CreatedAt) > e.TTL
}
