package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock translation backend for testing.
type MockProvider struct {
	Translations map[string]string  // Map of source text to translation
	Detected     Detection          // Detection returned by Detect
	Err          error              // If set, both calls fail with this error
	CallCount    int                // Number of times Translate was called
	DetectCount  int                // Number of times Detect was called
	LastRequest  *TranslateRequest  // Last request received
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Hola":              "Hello",
			"Hola mundo":        "Hello world",
			"Hello":             "Hola",
			"Hello world":       "Hola mundo",
			"How are you?":      "¿Cómo estás?",
		},
		Detected: Detection{Code: "es", Name: "spanish", Confidence: 0.98},
	}
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return nil, m.Err
	}

	if translation, ok := m.Translations[req.Text]; ok {
		return &TranslateResult{Text: translation, SourceLang: m.Detected.Code}, nil
	}

	// Return bracketed text for unknown translations
	return &TranslateResult{
		Text:       fmt.Sprintf("[%s]", req.Text),
		SourceLang: m.Detected.Code,
	}, nil
}

// Detect returns the configured detection.
func (m *MockProvider) Detect(ctx context.Context, text string) (*Detection, error) {
	m.DetectCount++

	if m.Err != nil {
		return nil, m.Err
	}

	d := m.Detected
	return &d, nil
}

// Reset resets the call counts and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.DetectCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
