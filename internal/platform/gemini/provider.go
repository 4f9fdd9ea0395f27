package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"
	"text/template"
	"time"

	"google.golang.org/genai"

	"github.com/partydeck/partydeck-api/internal/config"
	"github.com/partydeck/partydeck-api/internal/generation"
)

// Provider implements the generation.TermProvider interface using Google's
// Gemini API to generate additional game terms.
type Provider struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template

	// client is the Gemini API client for making requests
	client *genai.Client

	// model is the name of the Gemini model to use
	model string
}

// NewProvider creates a new Gemini-backed Provider with the provided
// dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized Provider or an error if initialization fails
func NewProvider(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Provider, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	// Validate configuration
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.PromptTemplatePath == "" {
		return nil, fmt.Errorf("%w: prompt template path cannot be empty", generation.ErrInvalidConfig)
	}

	// Load and parse prompt template
	templateContent, err := os.ReadFile(cfg.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			generation.ErrInvalidConfig, cfg.PromptTemplatePath, err)
	}

	promptTemplate, err := template.New("terms").Parse(string(templateContent))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v",
			generation.ErrInvalidConfig, err)
	}

	// Initialize the Gemini client
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &Provider{
		logger:         logger,
		config:         cfg,
		promptTemplate: promptTemplate,
		client:         client,
		model:          cfg.ModelName,
	}, nil
}

// GenerateTerms asks Gemini for count new terms matching the existing sample
// and optional topic hint. It implements generation.TermProvider.
func (p *Provider) GenerateTerms(
	ctx context.Context,
	existing []string,
	count int,
	topic string,
) ([]string, error) {
	prompt, err := p.createPrompt(ctx, existing, count, topic)
	if err != nil {
		return nil, err
	}

	response, err := p.callGeminiWithRetry(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return p.parseResponse(ctx, response, count)
}

// createPrompt generates a prompt string from the template with the given
// request data. The request must carry a topic or at least one existing term,
// and must ask for at least one new term.
func (p *Provider) createPrompt(
	ctx context.Context,
	existing []string,
	count int,
	topic string,
) (string, error) {
	if count < 1 {
		return "", ErrInvalidCount
	}

	if topic == "" && len(existing) == 0 {
		return "", ErrEmptyRequest
	}

	data := promptData{
		Count:    count,
		Topic:    topic,
		Existing: existing,
	}

	p.logger.DebugContext(ctx, "Generating prompt from template",
		"count", count,
		"existing_terms", len(existing),
		"topic_present", topic != "")

	var promptBuffer bytes.Buffer
	if err := p.promptTemplate.Execute(&promptBuffer, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return promptBuffer.String(), nil
}

// callGeminiWithRetry makes a call to the Gemini API with exponential backoff
// retry logic.
//
// It attempts the call up to config.MaxRetries+1 times, using exponential
// backoff with jitter between retries for transient errors. Permanent errors
// (like content being blocked by safety filters or an unparseable response)
// are returned immediately without retrying.
func (p *Provider) callGeminiWithRetry(ctx context.Context, prompt string) (*ResponseSchema, error) {
	maxRetries := p.config.MaxRetries
	baseDelaySeconds := p.config.RetryDelaySeconds
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if maxRetries < 0 {
		p.logger.WarnContext(ctx, "Invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	if baseDelaySeconds < 1 {
		p.logger.WarnContext(ctx, "Invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1 // For logging (1-based)
		p.logger.InfoContext(ctx, "Making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1)

		response, transient, err := p.callGemini(ctx, prompt)
		if err == nil {
			p.logger.InfoContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return response, nil
		}

		p.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !transient {
			p.logger.WarnContext(ctx, "Permanent error occurred, not retrying")
			return nil, err
		}

		if attempt >= maxRetries {
			p.logger.WarnContext(ctx, "Maximum retry attempts reached", "max_retries", maxRetries)
			return nil, fmt.Errorf("%w: exceeded maximum retry attempts (%d)",
				generation.ErrTransientFailure, maxRetries)
		}

		// delay = baseDelay * (2^attempt) * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		jitterFactor := 0.5 + rng.Float64()*0.5
		delay := time.Duration(backoffSeconds * jitterFactor * float64(time.Second))

		p.logger.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay", delay.String())

		select {
		case <-time.After(delay):
			// Continue to next retry
		case <-ctx.Done():
			p.logger.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", ctx.Err())
			return nil, fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// callGemini performs a single API call and classifies failures as transient
// (worth retrying) or permanent.
func (p *Provider) callGemini(ctx context.Context, prompt string) (*ResponseSchema, bool, error) {
	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), genCfg)
	if err != nil {
		// API and transport errors are assumed transient
		return nil, true, fmt.Errorf("%w: %v", generation.ErrProviderFailure, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, false, fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, false, fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return nil, false, fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}

	var parsed ResponseSchema
	if err := json.Unmarshal([]byte(text.String()), &parsed); err != nil {
		return nil, false, fmt.Errorf("%w: failed to parse JSON response: %v",
			generation.ErrInvalidResponse, err)
	}

	return &parsed, false, nil
}

// parseResponse validates the terms in a ResponseSchema and normalizes them:
// whitespace is trimmed, empties are dropped, and the list is capped at the
// requested count.
func (p *Provider) parseResponse(ctx context.Context, response *ResponseSchema, count int) ([]string, error) {
	if response == nil {
		return nil, fmt.Errorf("%w: response is nil", generation.ErrInvalidResponse)
	}

	if len(response.Terms) == 0 {
		return nil, fmt.Errorf("%w: no terms in response", generation.ErrInvalidResponse)
	}

	terms := make([]string, 0, len(response.Terms))
	for _, raw := range response.Terms {
		term := strings.TrimSpace(raw)
		if term == "" {
			continue
		}
		terms = append(terms, term)
		if len(terms) == count {
			break
		}
	}

	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: only blank terms in response", generation.ErrInvalidResponse)
	}

	p.logger.InfoContext(ctx, "Parsed Gemini API response",
		"received", len(response.Terms),
		"usable", len(terms),
		"requested", count)

	return terms, nil
}

var _ generation.TermProvider = (*Provider)(nil)
