package polyglot

import "time"

const (
	// SourceAuto asks the provider to detect the source language.
	SourceAuto = "auto"

	// DefaultTimeout bounds a single outbound provider call.
	DefaultTimeout = 10 * time.Second
)

// TranslateRequest contains the parameters for a single translation call.
type TranslateRequest struct {
	Text       string // Text to translate (already cleaned)
	TargetLang string // Canonical target language code (e.g., "es", "zh-cn")
	SourceLang string // Source language code, or "auto" for detection
}

// TranslateResult is the outcome of a successful translation call.
type TranslateResult struct {
	Text       string // Translated text
	SourceLang string // Source language the provider detected or used
}

// Detection describes the language a provider detected for a piece of text.
type Detection struct {
	Code       string  // Language code (e.g., "es")
	Name       string  // Human-readable name (e.g., "spanish"), if known
	Confidence float64 // Detection confidence in [0, 1]
}
