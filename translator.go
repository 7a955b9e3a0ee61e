package polyglot

import (
	"context"
	"errors"
	"time"

	"github.com/unicornia/polyglot/cache"
)

// Provider is the interface for translation backends.
type Provider interface {
	// Translate translates a single text. The request's SourceLang may be
	// "auto", in which case the provider detects the source language.
	Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error)

	// Detect identifies the language of the given text.
	Detect(ctx context.Context, text string) (*Detection, error)
}

// TranslationCache is the caching interface consumed by the Translator.
// It is satisfied by cache.LRUCache and cache.RedisCache.
type TranslationCache interface {
	Get(text, targetLang string) (*cache.Entry, bool)
	Set(text, targetLang, translatedText, sourceLang string, ttl time.Duration) error
}

// Translator ties together language resolution, caching, and the provider.
//
// The provider call runs under its own timeout and never inside the cache's
// critical section; a slow remote call therefore cannot serialize concurrent
// cache users.
type Translator struct {
	provider Provider
	cache    TranslationCache
	resolver *Resolver
	timeout  time.Duration
	cacheTTL time.Duration
	workers  int
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithCache sets the translation cache. Without a cache every call goes to
// the provider.
func WithCache(c TranslationCache) Option {
	return func(t *Translator) {
		t.cache = c
	}
}

// WithResolver sets a custom language resolver.
func WithResolver(r *Resolver) Option {
	return func(t *Translator) {
		t.resolver = r
	}
}

// WithTimeout sets the per-call bound on the outbound provider call.
func WithTimeout(d time.Duration) Option {
	return func(t *Translator) {
		t.timeout = d
	}
}

// WithCacheTTL overrides the cache's default TTL for entries written by this
// Translator.
func WithCacheTTL(d time.Duration) Option {
	return func(t *Translator) {
		t.cacheTTL = d
	}
}

// WithBatchWorkers sets the concurrency for TranslateBatch.
func WithBatchWorkers(n int) Option {
	return func(t *Translator) {
		if n > 0 {
			t.workers = n
		}
	}
}

// New creates a Translator with the given provider.
func New(provider Provider, opts ...Option) *Translator {
	t := &Translator{
		provider: provider,
		resolver: NewResolver(nil),
		timeout:  DefaultTimeout,
		workers:  4,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate translates text to the target language, which may be a code or a
// display name ("es", "spanish"). The source language is detected.
//
// Empty or whitespace-only text translates to "" without any lookup or
// provider call. Failures are typed: *LanguageNotFoundError,
// *TimeoutError, or *ServiceError.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	return t.TranslateFrom(ctx, text, targetLang, SourceAuto)
}

// TranslateFrom is Translate with an explicit source language code.
func (t *Translator) TranslateFrom(ctx context.Context, text, targetLang, sourceLang string) (string, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return "", nil
	}

	code, ok := t.resolver.Normalize(targetLang)
	if !ok {
		return "", &LanguageNotFoundError{Input: targetLang}
	}

	// Cache lookup happens before the remote call; the cache's lock is
	// never held across it.
	if t.cache != nil {
		if entry, ok := t.cache.Get(cleaned, code); ok {
			return entry.TranslatedText, nil
		}
	}

	if sourceLang == "" {
		sourceLang = SourceAuto
	}

	result, err := t.callProvider(ctx, TranslateRequest{
		Text:       cleaned,
		TargetLang: code,
		SourceLang: sourceLang,
	})
	if err != nil {
		return "", err
	}

	// Only successful results are cached; failures leave the cache as-is.
	if t.cache != nil {
		src := result.SourceLang
		if src == "" {
			src = sourceLang
		}
		_ = t.cache.Set(cleaned, code, result.Text, src, t.cacheTTL)
	}

	return result.Text, nil
}

// Detect identifies the language of the given text. Returns nil for empty
// text.
func (t *Translator) Detect(ctx context.Context, text string) (*Detection, error) {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil, nil
	}

	tctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	detection, err := t.provider.Detect(tctx, cleaned)
	if err != nil {
		return nil, t.wrapProviderError(err)
	}

	if detection.Name == "" {
		detection.Name = t.resolver.Name(detection.Code)
	}
	return detection, nil
}

// Resolver returns the language resolver in use.
func (t *Translator) Resolver() *Resolver {
	return t.resolver
}

// callProvider runs the provider call under the configured timeout and maps
// failures onto the typed error set.
func (t *Translator) callProvider(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	tctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	result, err := t.provider.Translate(tctx, req)
	if err != nil {
		return nil, t.wrapProviderError(err)
	}
	return result, nil
}

func (t *Translator) wrapProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Timeout: t.timeout, Cause: err}
	}

	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return err
	}

	return &ServiceError{Message: "provider call failed", Cause: err}
}
