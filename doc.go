// Package polyglot provides a chat message translation core.
//
// Polyglot normalizes free-form language input to canonical codes,
// translates text through a pluggable provider (Google's web endpoint,
// OpenAI, etc.), and caches results in a bounded LRU cache with TTL
// expiration to avoid redundant network calls.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/unicornia/polyglot"
//	    "github.com/unicornia/polyglot/cache"
//	    "github.com/unicornia/polyglot/provider"
//	)
//
//	func main() {
//	    // Create provider
//	    p := provider.NewGoogleWebProvider(provider.GoogleWebConfig{})
//
//	    // Create translator with a bounded cache
//	    t := polyglot.New(p,
//	        polyglot.WithCache(cache.NewLRU(5000, 7*24*time.Hour)),
//	    )
//
//	    // Translate a message
//	    result, err := t.Translate(context.Background(), "Hola mundo", "english")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(result) // Hello world
//	}
package polyglot
