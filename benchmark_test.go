package polyglot_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/unicornia/polyglot"
	"github.com/unicornia/polyglot/cache"
	"github.com/unicornia/polyglot/provider"
)

func BenchmarkResolver_NormalizeCode(b *testing.B) {
	r := polyglot.NewResolver(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Normalize("es")
	}
}

func BenchmarkResolver_NormalizeName(b *testing.B) {
	r := polyglot.NewResolver(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Normalize("spanish")
	}
}

func BenchmarkCache_Key(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cache.Key(text, "es")
	}
}

func BenchmarkLRU_Get_Hit(b *testing.B) {
	c := cache.NewLRU(1000, time.Hour)
	c.Set("Hola", "en", "Hello", "es", 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("Hola", "en")
	}
}

func BenchmarkLRU_Set(b *testing.B) {
	c := cache.NewLRU(1000, time.Hour)
	texts := make([]string, 2000)
	for i := range texts {
		texts[i] = fmt.Sprintf("message %d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(texts[i%len(texts)], "en", "translated", "auto", 0)
	}
}

func BenchmarkTranslator_CachedTranslate(b *testing.B) {
	p := provider.NewMockProvider()
	t := polyglot.New(p, polyglot.WithCache(cache.NewLRU(1000, time.Hour)))
	ctx := context.Background()

	// Warm the cache
	t.Translate(ctx, "Hola", "english")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Translate(ctx, "Hola", "english")
	}
}
