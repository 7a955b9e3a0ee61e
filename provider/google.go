package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/unicornia/polyglot"
)

const defaultGoogleBaseURL = "https://translate.googleapis.com"

// GoogleWebProvider translates text through Google's free web translation
// endpoint (the same one the googletrans ecosystem uses). No API key is
// required; the endpoint is rate limited and undocumented, so callers
// should wrap this provider with retry or rate limiting.
type GoogleWebProvider struct {
	baseURL string
	client  *http.Client
}

// GoogleWebConfig holds configuration for the Google web provider.
type GoogleWebConfig struct {
	BaseURL    string       // Override the endpoint (used in tests)
	HTTPClient *http.Client // Custom HTTP client (default: http.DefaultClient)
}

// NewGoogleWebProvider creates a new Google web provider.
func NewGoogleWebProvider(cfg GoogleWebConfig) *GoogleWebProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}

	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	return &GoogleWebProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Translate translates a single text.
func (p *GoogleWebProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	source := req.SourceLang
	if source == "" {
		source = "auto"
	}

	raw, err := p.call(ctx, req.Text, req.TargetLang, source)
	if err != nil {
		return nil, err
	}

	text, err := joinSegments(raw)
	if err != nil {
		return nil, err
	}

	result := &TranslateResult{Text: text, SourceLang: source}
	if detected := detectedLanguage(raw); detected != "" {
		result.SourceLang = detected
	}
	return result, nil
}

// Detect identifies the language of the given text. The endpoint has no
// dedicated detection call; a translation to English carries the detected
// source language in its response.
func (p *GoogleWebProvider) Detect(ctx context.Context, text string) (*Detection, error) {
	raw, err := p.call(ctx, text, "en", "auto")
	if err != nil {
		return nil, err
	}

	code := detectedLanguage(raw)
	if code == "" {
		return nil, &polyglot.ServiceError{
			Message:   "response carried no detected language",
			Retryable: false,
		}
	}

	return &Detection{
		Code:       code,
		Name:       polyglot.LanguageName(code),
		Confidence: detectionConfidence(raw),
	}, nil
}

// call performs one endpoint request and returns the decoded response array.
func (p *GoogleWebProvider) call(ctx context.Context, text, targetLang, sourceLang string) ([]any, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("dt", "t")
	params.Set("ie", "UTF-8")
	params.Set("oe", "UTF-8")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("q", text)

	endpoint := p.baseURL + "/translate_a/single?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &polyglot.ServiceError{Message: "building request", Cause: err}
	}
	httpReq.Header.Set("User-Agent", polyglot.UserAgent())

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &polyglot.ServiceError{
			Message:   "endpoint unreachable",
			Cause:     err,
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &polyglot.ServiceError{
			Message:   "reading response",
			Cause:     err,
			Retryable: true,
		}
	}

	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &polyglot.ServiceError{
			Message:   "malformed response",
			Cause:     err,
			Retryable: false,
		}
	}
	return raw, nil
}

// joinSegments concatenates the translated sentence segments from the
// response: raw[0] is a list of [translated, original, ...] pairs.
func joinSegments(raw []any) (string, error) {
	if len(raw) == 0 {
		return "", &polyglot.ServiceError{Message: "empty response", Retryable: false}
	}

	segments, ok := raw[0].([]any)
	if !ok {
		return "", &polyglot.ServiceError{Message: "malformed response", Retryable: false}
	}

	var b strings.Builder
	for _, s := range segments {
		seg, ok := s.([]any)
		if !ok || len(seg) == 0 {
			continue
		}
		if text, ok := seg[0].(string); ok {
			b.WriteString(text)
		}
	}
	return b.String(), nil
}

// detectedLanguage extracts the detected source language code (raw[2]).
func detectedLanguage(raw []any) string {
	if len(raw) > 2 {
		if code, ok := raw[2].(string); ok {
			return code
		}
	}
	return ""
}

// detectionConfidence extracts the confidence score (raw[6]), if present.
func detectionConfidence(raw []any) float64 {
	if len(raw) > 6 {
		if conf, ok := raw[6].(float64); ok {
			return conf
		}
	}
	return 1.0
}

func statusError(code int) error {
	switch {
	case code == http.StatusTooManyRequests:
		return &polyglot.ServiceError{
			Message:   "rate limited by endpoint",
			Retryable: true,
		}
	case code >= 500:
		return &polyglot.ServiceError{
			Message:   fmt.Sprintf("endpoint returned %d", code),
			Retryable: true,
		}
	default:
		return &polyglot.ServiceError{
			Message:   fmt.Sprintf("endpoint returned %d", code),
			Retryable: false,
		}
	}
}

// Verify GoogleWebProvider implements Provider
var _ Provider = (*GoogleWebProvider)(nil)
