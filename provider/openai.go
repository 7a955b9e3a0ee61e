package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/unicornia/polyglot"
)

// OpenAIProvider implements Provider using OpenAI's chat completion API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Translate translates a single text using OpenAI.
func (p *OpenAIProvider) Translate(ctx context.Context, req TranslateRequest) (*TranslateResult, error) {
	content, err := p.complete(ctx, p.buildTranslatePrompt(req), req.Text)
	if err != nil {
		return nil, err
	}
	return p.parseTranslateResponse(content, req.SourceLang)
}

// Detect identifies the language of the given text using OpenAI.
func (p *OpenAIProvider) Detect(ctx context.Context, text string) (*Detection, error) {
	content, err := p.complete(ctx, detectPrompt, text)
	if err != nil {
		return nil, err
	}
	return p.parseDetectResponse(content)
}

func (p *OpenAIProvider) complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &polyglot.ServiceError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &polyglot.ServiceError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) buildTranslatePrompt(req TranslateRequest) string {
	targetName := polyglot.LanguageName(req.TargetLang)

	sourceClause := "Detect the source language yourself."
	if req.SourceLang != "" && req.SourceLang != "auto" {
		sourceClause = fmt.Sprintf("The source language is %s.", polyglot.LanguageName(req.SourceLang))
	}

	return fmt.Sprintf(`# Role
You are an expert native translator. You translate chat messages into %s with the fluency of a highly educated native speaker.

# Task
Translate the user's message into idiomatic %s. %s

# Style Guide
- **Natural Flow**: Avoid literal translations. Rephrase so the result sounds completely natural to a native speaker.
- **Tone**: Chat messages are informal; keep the register conversational unless the source is clearly formal.
- **Idioms**: Never translate idioms literally. Replace them with natural %s equivalents.
- **Mentions and Emoji**: Do NOT translate @mentions, #channels, URLs, or emoji shortcodes.

# Format
Return a valid JSON object: { "translation": "...", "source_language": "<ISO 639-1 code of the source>" }
Do NOT wrap the output in Markdown code blocks.`, targetName, targetName, sourceClause, targetName)
}

const detectPrompt = `# Task
Identify the language of the user's message.

# Format
Return a valid JSON object: { "language": "<ISO 639-1 code>", "confidence": <0.0-1.0> }
Do NOT wrap the output in Markdown code blocks.`

func (p *OpenAIProvider) parseTranslateResponse(content, requestedSource string) (*TranslateResult, error) {
	var parsed struct {
		Translation    string `json:"translation"`
		SourceLanguage string `json:"source_language"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil || parsed.Translation == "" {
		return nil, &polyglot.ServiceError{
			Message:   "invalid response format from OpenAI",
			Retryable: false,
		}
	}

	source := parsed.SourceLanguage
	if source == "" {
		source = requestedSource
	}

	return &TranslateResult{Text: parsed.Translation, SourceLang: source}, nil
}

func (p *OpenAIProvider) parseDetectResponse(content string) (*Detection, error) {
	var parsed struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil || parsed.Language == "" {
		return nil, &polyglot.ServiceError{
			Message:   "invalid response format from OpenAI",
			Retryable: false,
		}
	}

	code := strings.ToLower(parsed.Language)
	return &Detection{
		Code:       code,
		Name:       polyglot.LanguageName(code),
		Confidence: parsed.Confidence,
	}, nil
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := err.Error()
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(strings.ToLower(errStr), pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
