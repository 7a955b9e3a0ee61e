// Package provider defines translation backend implementations.
package provider

import "github.com/unicornia/polyglot"

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = polyglot.Provider

// TranslateRequest is an alias to the main package type.
type TranslateRequest = polyglot.TranslateRequest

// TranslateResult is an alias to the main package type.
type TranslateResult = polyglot.TranslateResult

// Detection is an alias to the main package type.
type Detection = polyglot.Detection
