package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/unicornia/polyglot"
)

func TestOpenAIProvider_BuildTranslatePrompt(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	prompt := p.buildTranslatePrompt(TranslateRequest{Text: "Hola", TargetLang: "en", SourceLang: "auto"})
	if !strings.Contains(prompt, "english") {
		t.Error("prompt should name the target language")
	}
	if !strings.Contains(prompt, "Detect the source language yourself") {
		t.Error("auto source should ask the model to detect")
	}

	prompt = p.buildTranslatePrompt(TranslateRequest{Text: "Hola", TargetLang: "en", SourceLang: "es"})
	if !strings.Contains(prompt, "The source language is spanish") {
		t.Error("explicit source should name the source language")
	}
}

func TestOpenAIProvider_ParseTranslateResponse(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	tests := []struct {
		name       string
		content    string
		wantText   string
		wantSource string
		wantErr    bool
	}{
		{
			name:       "full response",
			content:    `{"translation": "Hello", "source_language": "es"}`,
			wantText:   "Hello",
			wantSource: "es",
		},
		{
			name:       "missing source falls back to request",
			content:    `{"translation": "Hello"}`,
			wantText:   "Hello",
			wantSource: "auto",
		},
		{
			name:    "empty translation",
			content: `{"translation": ""}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: "Hello",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := p.parseTranslateResponse(tt.content, "auto")
			if tt.wantErr {
				var serviceErr *polyglot.ServiceError
				if !errors.As(err, &serviceErr) {
					t.Fatalf("expected *polyglot.ServiceError, got %v", err)
				}
				if serviceErr.Retryable {
					t.Error("parse failure should not be retryable")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", result.Text, tt.wantText)
			}
			if result.SourceLang != tt.wantSource {
				t.Errorf("SourceLang = %q, want %q", result.SourceLang, tt.wantSource)
			}
		})
	}
}

func TestOpenAIProvider_ParseDetectResponse(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	d, err := p.parseDetectResponse(`{"language": "ES", "confidence": 0.92}`)
	if err != nil {
		t.Fatalf("parseDetectResponse failed: %v", err)
	}
	if d.Code != "es" {
		t.Errorf("Code = %q, want es (lowercased)", d.Code)
	}
	if d.Name != "spanish" {
		t.Errorf("Name = %q, want spanish", d.Name)
	}
	if d.Confidence != 0.92 {
		t.Errorf("Confidence = %v, want 0.92", d.Confidence)
	}

	if _, err := p.parseDetectResponse(`{"confidence": 0.5}`); err == nil {
		t.Error("missing language should fail")
	}
}

func TestOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	if p.model != "gpt-4o-mini" {
		t.Errorf("model = %q, want gpt-4o-mini", p.model)
	}
	if p.temperature != 0.3 {
		t.Errorf("temperature = %v, want 0.3", p.temperature)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("rate limit exceeded"), true},
		{errors.New("request timeout"), true},
		{errors.New("connection refused"), true},
		{errors.New("status code 429"), true},
		{errors.New("status code 503"), true},
		{errors.New("invalid api key"), false},
		{errors.New("model not found"), false},
	}

	for _, tt := range tests {
		if got := isRetryableError(tt.err); got != tt.want {
			t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider()

	result, err := m.Translate(context.Background(), TranslateRequest{Text: "Hola", TargetLang: "en"})
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result.Text != "Hello" {
		t.Errorf("Text = %q, want Hello", result.Text)
	}
	if m.CallCount != 1 {
		t.Errorf("CallCount = %d, want 1", m.CallCount)
	}
	if m.LastRequest == nil || m.LastRequest.Text != "Hola" {
		t.Error("LastRequest should record the request")
	}

	// Unknown text comes back bracketed
	result, _ = m.Translate(context.Background(), TranslateRequest{Text: "xyzzy", TargetLang: "en"})
	if result.Text != "[xyzzy]" {
		t.Errorf("unknown text = %q, want [xyzzy]", result.Text)
	}

	d, err := m.Detect(context.Background(), "Hola")
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if d.Code != "es" {
		t.Errorf("Code = %q, want es", d.Code)
	}

	m.Reset()
	if m.CallCount != 0 || m.DetectCount != 0 || m.LastRequest != nil {
		t.Error("Reset should clear counters")
	}

	m.Err = errors.New("boom")
	if _, err := m.Translate(context.Background(), TranslateRequest{Text: "Hola", TargetLang: "en"}); err == nil {
		t.Error("configured error should be returned")
	}
}
