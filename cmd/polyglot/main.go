// Command polyglot translates chat text from the command line.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unicornia/polyglot"
	"github.com/unicornia/polyglot/cache"
	"github.com/unicornia/polyglot/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = polyglot.Version
	commit    = polyglot.GitCommit
	buildDate = polyglot.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("polyglot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	targetLang := fs.String("lang", "", "Target language code or name (e.g., es, spanish)")
	sourceLang := fs.String("source", "auto", "Source language code (auto = detect)")
	providerName := fs.String("provider", "google", "Translation backend: google or openai")
	apiKey := fs.String("api-key", "", "OpenAI API key (default: OPENAI_API_KEY env)")
	model := fs.String("model", "gpt-4o-mini", "OpenAI model to use")
	timeout := fs.Duration("timeout", polyglot.DefaultTimeout, "Per-call timeout for the translation service")
	cacheTTL := fs.Duration("cache-ttl", cache.DefaultTTL, "Cache entry TTL (0 = never expire)")
	cacheSize := fs.Int("cache-size", cache.DefaultMaxSize, "Maximum cached translations")
	detect := fs.Bool("detect", false, "Detect the input language instead of translating")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showStats := fs.Bool("stats", false, "Print cache statistics to stderr")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", polyglot.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *targetLang == "" && !*detect {
		fs.Usage()
		return fmt.Errorf("--lang is required")
	}

	// Get input: inline arguments, or stdin
	var input string
	if fs.NArg() > 0 {
		input = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
	}

	p, err := buildProvider(*providerName, *apiKey, *model)
	if err != nil {
		return err
	}

	lru := cache.NewLRU(*cacheSize, *cacheTTL)
	translator := polyglot.New(p,
		polyglot.WithCache(lru),
		polyglot.WithTimeout(*timeout),
	)

	ctx := context.Background()

	if *detect {
		return runDetect(ctx, translator, input, stdout, *jsonOutput)
	}

	translated, err := translator.TranslateFrom(ctx, input, *targetLang, *sourceLang)
	if err != nil {
		return describeFailure(err)
	}

	if *jsonOutput {
		out := struct {
			Text       string `json:"text"`
			TargetLang string `json:"target_lang"`
		}{Text: translated, TargetLang: *targetLang}
		encoder := json.NewEncoder(stdout)
		if err := encoder.Encode(out); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(stdout, translated)
	}

	if *showStats {
		stats := lru.Stats()
		fmt.Fprintf(stderr, "cache: %d/%d entries, %d hits, %d misses, %.0f%% hit rate\n",
			stats.Size, stats.MaxSize, stats.Hits, stats.Misses, stats.HitRate*100)
	}

	return nil
}

func runDetect(ctx context.Context, translator *polyglot.Translator, input string, stdout io.Writer, jsonOutput bool) error {
	detection, err := translator.Detect(ctx, input)
	if err != nil {
		return describeFailure(err)
	}
	if detection == nil {
		return fmt.Errorf("nothing to detect")
	}

	if jsonOutput {
		return json.NewEncoder(stdout).Encode(detection)
	}
	fmt.Fprintf(stdout, "%s (%s), confidence %.2f\n", detection.Name, detection.Code, detection.Confidence)
	return nil
}

func buildProvider(name, apiKey, model string) (polyglot.Provider, error) {
	switch name {
	case "google":
		return provider.NewGoogleWebProvider(provider.GoogleWebConfig{}), nil
	case "openai":
		key := apiKey
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return nil, fmt.Errorf("API key required: use --api-key or OPENAI_API_KEY")
		}
		return provider.NewOpenAIProvider(provider.OpenAIConfig{APIKey: key, Model: model}), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (use google or openai)", name)
	}
}

// describeFailure turns typed failures into short actionable messages.
func describeFailure(err error) error {
	var notFound *polyglot.LanguageNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Errorf("%v: try something like 'english', 'spanish', or 'es'", err)
	}

	var timeout *polyglot.TimeoutError
	if errors.As(err, &timeout) {
		return fmt.Errorf("%v: the service is busy, try again in a moment", err)
	}

	return err
}
