package cache

import (
	"container/list"
	"sync"
	"time"
)

// lruItem is what the recency list holds: the derived key plus its entry.
type lruItem struct {
	key   string
	entry *Entry
}

// LRUCache is a bounded, thread-safe in-memory translation cache.
//
// Recency order is a strict total order: every Get hit and every Set moves
// the touched entry to the front, and the back entry is evicted when the
// bound is reached. All operations, including stats reads, run under one
// mutex so counters and recency order stay consistent for concurrent
// callers.
type LRUCache struct {
	mu         sync.Mutex
	maxSize    int
	defaultTTL time.Duration

	ll    *list.List // front = most recently used
	index map[string]*list.Element

	hits      uint64
	misses    uint64
	evictions uint64
}

// NewLRU creates a cache bounded to maxSize entries with the given default
// TTL. maxSize <= 0 uses DefaultMaxSize; defaultTTL <= 0 means entries never
// expire unless Set is given an explicit TTL.
func NewLRU(maxSize int, defaultTTL time.Duration) *LRUCache {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if defaultTTL < 0 {
		defaultTTL = 0
	}
	return &LRUCache{
		maxSize:    maxSize,
		defaultTTL: defaultTTL,
		ll:         list.New(),
		index:      make(map[string]*list.Element),
	}
}

// Get retrieves the cached translation for (text, targetLang).
//
// A valid entry is marked most recently used and counts as a hit. An
// expired entry is removed and counts as a miss.
func (c *LRUCache) Get(text, targetLang string) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(text, targetLang)
	el, ok := c.index[key]
	if !ok {
		c.misses++
		return nil, false
	}

	item := el.Value.(*lruItem)
	if item.entry.Expired() {
		c.removeElement(el)
		c.misses++
		return nil, false
	}

	c.ll.MoveToFront(el)
	c.hits++
	return item.entry, true
}

// Set stores a translation for (text, targetLang).
//
// Inserting a new key at capacity first evicts the least recently used
// entry. Overwriting an existing key resets its TTL clock and recency but
// does not count as an eviction. A ttl of 0 uses the cache default;
// NoExpiration stores the entry without expiry.
func (c *LRUCache) Set(text, targetLang, translatedText, sourceLang string, ttl time.Duration) error {
	entry := &Entry{
		TranslatedText: translatedText,
		SourceLanguage: sourceLanguageOrAuto(sourceLang),
		TargetLanguage: targetLang,
		CreatedAt:      time.Now(),
		TTL:            c.resolveTTL(ttl),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := Key(text, targetLang)
	if el, ok := c.index[key]; ok {
		el.Value = &lruItem{key: key, entry: entry}
		c.ll.MoveToFront(el)
		return nil
	}

	if c.ll.Len() >= c.maxSize {
		if back := c.ll.Back(); back != nil {
			c.removeElement(back)
			c.evictions++
		}
	}

	c.index[key] = c.ll.PushFront(&lruItem{key: key, entry: entry})
	return nil
}

// Clear removes all entries. Statistics counters are kept.
func (c *LRUCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.index = make(map[string]*list.Element)
}

// CleanupExpired removes every expired entry regardless of recency and
// returns the number removed. Intended for periodic invocation by an
// external scheduler.
func (c *LRUCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.ll.Front(); el != nil; {
		next := el.Next()
		if el.Value.(*lruItem).entry.Expired() {
			c.removeElement(el)
			removed++
		}
		el = next
	}
	return removed
}

// Len returns the current number of entries.
func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Stats returns a consistent snapshot of the cache counters.
func (c *LRUCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Size:      c.ll.Len(),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// ResetStats zeroes hits, misses, and evictions. Entries are untouched.
func (c *LRUCache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.hits = 0
	c.misses = 0
	c.evictions = 0
}

// Entries returns a copy of all non-expired entries keyed by cache key.
// Used for snapshot export.
func (c *LRUCache) Entries() map[string]Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]Entry, c.ll.Len())
	for el := c.ll.Front(); el != nil; el = el.Next() {
		item := el.Value.(*lruItem)
		if item.entry.Expired() {
			continue
		}
		result[item.key] = *item.entry
	}
	return result
}

// restore inserts an entry under a pre-derived key, preserving its original
// creation time. Used by snapshot import.
func (c *LRUCache) restore(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value = &lruItem{key: key, entry: &entry}
		c.ll.MoveToFront(el)
		return
	}

	if c.ll.Len() >= c.maxSize {
		if back := c.ll.Back(); back != nil {
			c.removeElement(back)
			c.evictions++
		}
	}
	c.index[key] = c.ll.PushFront(&lruItem{key: key, entry: &entry})
}

// removeElement must be called with the lock held.
func (c *LRUCache) removeElement(el *list.Element) {
	c.ll.Remove(el)
	delete(c.index, el.Value.(*lruItem).key)
}

func (c *LRUCache) resolveTTL(ttl time.Duration) time.Duration {
	switch {
	case ttl == 0:
		return c.defaultTTL
	case ttl < 0:
		return 0 // NoExpiration
	default:
		return ttl
	}
}

func sourceLanguageOrAuto(sourceLang string) string {
	if sourceLang == "" {
		return "auto"
	}
	return sourceLang
}

// Verify LRUCache implements TranslationCache
var _ TranslationCache = (*LRUCache)(nil)
