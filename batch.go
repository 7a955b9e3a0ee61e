package polyglot

import (
	"context"
	"sync"
)

// TranslateBatch translates several texts to one target language using a
// bounded number of concurrent workers. Each text follows the same
// clean/cache/provider path as Translate, so repeated texts hit the cache.
//
// Results are returned in input order. The first failure cancels the
// remaining work and is returned to the caller.
func (t *Translator) TranslateBatch(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	// Validate the target once instead of per worker.
	if _, ok := t.resolver.Normalize(targetLang); !ok {
		return nil, &LanguageNotFoundError{Input: targetLang}
	}

	bctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]string, len(texts))
	sem := make(chan struct{}, t.workers)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for i, text := range texts {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-bctx.Done():
				return
			}
			defer func() { <-sem }()

			translated, err := t.Translate(bctx, text, targetLang)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
					cancel()
				}
				mu.Unlock()
				return
			}
			results[i] = translated
		}(i, text)
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// Workers that were still waiting on the semaphore when the caller's
	// context was cancelled exit without recording an error; a partial
	// results slice must not read as success.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
