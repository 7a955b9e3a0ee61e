package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed translation cache. Entries are stored as
// JSON; expiry is delegated to the server, so CleanupExpired has no
// Redis-side analog. Counters (hits/misses/evictions) belong to the
// in-memory cache; Redis keeps its own via INFO stats.
type RedisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
	keyPrefix  string
}

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL       string        // Redis connection URL (e.g., "redis://localhost:6379")
	TTL       time.Duration // Default TTL (0 = no expiration)
	KeyPrefix string        // Prefix for all keys (default: "polyglot:")
}

// NewRedis creates a new Redis cache with the given configuration.
func NewRedis(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisFromClient(client, cfg.TTL, cfg.KeyPrefix), nil
}

// NewRedisFromClient creates a RedisCache from an existing Redis client.
func NewRedisFromClient(client *redis.Client, defaultTTL time.Duration, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = "polyglot:"
	}
	if defaultTTL < 0 {
		defaultTTL = 0
	}

	return &RedisCache{
		client:     client,
		defaultTTL: defaultTTL,
		keyPrefix:  keyPrefix,
	}
}

// Get retrieves a cached translation from Redis.
func (c *RedisCache) Get(text, targetLang string) (*Entry, bool) {
	ctx := context.Background()
	val, err := c.client.Get(ctx, c.keyPrefix+Key(text, targetLang)).Result()
	if err != nil {
		// redis.Nil and transport errors both read as a cache miss
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return nil, false
	}
	if entry.Expired() {
		return nil, false
	}
	return &entry, true
}

// Set stores a translation in Redis. A ttl of 0 uses the cache default;
// NoExpiration stores without expiry.
func (c *RedisCache) Set(text, targetLang, translatedText, sourceLang string, ttl time.Duration) error {
	resolved := ttl
	switch {
	case ttl == 0:
		resolved = c.defaultTTL
	case ttl < 0:
		resolved = 0
	}

	entry := Entry{
		TranslatedText: translatedText,
		SourceLanguage: sourceLanguageOrAuto(sourceLang),
		TargetLanguage: targetLang,
		CreatedAt:      time.Now(),
		TTL:            resolved,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return c.client.Set(ctx, c.keyPrefix+Key(text, targetLang), string(data), resolved).Err()
}

// Clear removes all entries under this cache's key prefix.
func (c *RedisCache) Clear() error {
	ctx := context.Background()

	iter := c.client.Scan(ctx, 0, c.keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping() error {
	ctx := context.Background()
	return c.client.Ping(ctx).Err()
}

// Verify RedisCache implements TranslationCache
var _ TranslationCache = (*RedisCache)(nil)
