// Package gemini implements generation.Generator on top of Google's
// Gemini API via the google.golang.org/genai client.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/quatrainhq/quatrain-api/internal/config"
	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
	"google.golang.org/genai"
)

// minPoemLength is the minimum number of characters an acceptable
// model response must contain.
const minPoemLength = 10

// focusedRetryTemperature is used for the low-creativity retry that
// forces the theme phrase into the poem.
const focusedRetryTemperature = 0.3

// Generator calls the Gemini API to produce poems.
type Generator struct {
	logger  *slog.Logger
	cfg     config.LLMConfig
	prompts *generation.PromptBuilder
	client  *genai.Client
	model   string

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a Gemini-backed Generator.
//
// Returns an error wrapping generation.ErrInvalidConfig when the
// configuration is incomplete or the client cannot be constructed.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	prompts, err := generation.NewPromptBuilder()
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:  logger,
		cfg:     cfg,
		prompts: prompts,
		client:  client,
		model:   cfg.ModelName,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// GeneratePoem implements generation.Generator.
//
// The call is retried with exponential backoff for transient failures.
// When the returned poem does not reference the theme, one focused retry
// at low temperature forces the theme phrase in; its result is used even
// if the check still fails, matching the best-effort contract.
func (g *Generator) GeneratePoem(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	nonce := g.nextNonce()
	prompt, err := g.prompts.Build(req, nonce)
	if err != nil {
		return nil, err
	}
	system := generation.SystemInstruction(req, nonce)

	text, err := g.callWithRetry(ctx, prompt, system, req)
	if err != nil {
		return nil, err
	}

	text = generation.CleanPoemText(text)
	if len(text) < minPoemLength {
		return nil, fmt.Errorf("%w: generated poem is too short", generation.ErrInvalidResponse)
	}

	if !generation.ReferencesTheme(text, req.Theme) {
		g.logger.WarnContext(ctx, "generated poem does not reference the theme, performing focused retry",
			"theme", req.Theme)

		focused, retryErr := g.focusedRetry(ctx, prompt, system, req)
		if retryErr != nil {
			g.logger.WarnContext(ctx, "focused retry failed, keeping original poem",
				"error", retryErr)
		} else if focused != "" {
			text = focused
		}
	}

	return domain.NewPoem(req.Theme, req.Style, req.Length, text, domain.SourceGemini)
}

// callWithRetry calls the Gemini API with exponential backoff and jitter.
// Permanent errors (blocked content, malformed responses, quota) are
// returned immediately without retrying.
func (g *Generator) callWithRetry(ctx context.Context, prompt, system string, req generation.PoemRequest) (string, error) {
	maxRetries := g.cfg.MaxRetries
	if maxRetries < 0 {
		g.logger.WarnContext(ctx, "invalid max retries value, using default", "max_retries", 3)
		maxRetries = 3
	}

	baseDelaySeconds := g.cfg.RetryDelaySeconds
	if baseDelaySeconds < 1 {
		g.logger.WarnContext(ctx, "invalid retry delay value, using default", "base_delay_seconds", 2)
		baseDelaySeconds = 2
	}

	for attempt := 0; ; attempt++ {
		attemptNum := attempt + 1 // 1-based for logging
		g.logger.InfoContext(ctx, "making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries+1,
			"model", g.model)

		text, err := g.callModel(ctx, prompt, system, g.temperature(), generation.MaxOutputTokens(req.Length))
		if err == nil {
			g.logger.InfoContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return text, nil
		}

		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"attempt", attemptNum,
			"error", err)

		if !isTransient(err) {
			return "", err
		}

		if attempt >= maxRetries {
			g.logger.WarnContext(ctx, "maximum retry attempts reached", "max_retries", maxRetries)
			// Keep the classified error in the chain so the API layer can
			// still distinguish rate limits from other transient failures.
			return "", fmt.Errorf("exceeded maximum retry attempts (%d): %w", maxRetries, err)
		}

		// Exponential backoff with jitter:
		// delay = baseDelay * 2^attempt * (0.5 + rand(0, 0.5))
		backoffSeconds := float64(baseDelaySeconds) * math.Pow(2, float64(attempt))
		delaySeconds := backoffSeconds * (0.5 + g.random()*0.5)
		delay := time.Duration(delaySeconds * float64(time.Second))

		g.logger.InfoContext(ctx, "retrying after delay",
			"attempt", attemptNum,
			"delay_seconds", delaySeconds)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			g.logger.WarnContext(ctx, "API call cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", ctx.Err())
			return "", fmt.Errorf("%w: %v", generation.ErrTransientFailure, ctx.Err())
		}
	}
}

// focusedRetry reruns the prompt with an explicit instruction to include
// the exact theme phrase, at low temperature.
func (g *Generator) focusedRetry(ctx context.Context, prompt, system string, req generation.PoemRequest) (string, error) {
	focusedPrompt := prompt + fmt.Sprintf(
		"\n\nIMPORTANT: The poem MUST include the exact phrase %q at least once. Do not omit or change this phrase. Return only the poem text.",
		req.Theme)

	text, err := g.callModel(ctx, focusedPrompt, system, focusedRetryTemperature, generation.MaxOutputTokens(req.Length))
	if err != nil {
		return "", err
	}

	text = generation.CleanPoemText(text)
	if len(text) < minPoemLength {
		return "", fmt.Errorf("%w: focused retry produced a poem that is too short", generation.ErrInvalidResponse)
	}
	return text, nil
}

// callModel performs a single GenerateContent call with the per-call
// timeout from configuration.
func (g *Generator) callModel(ctx context.Context, prompt, system string, temperature float64, maxTokens int32) (string, error) {
	timeout := time.Duration(g.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(temperature)),
		MaxOutputTokens:   maxTokens,
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", classifyAPIError(err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason safety", generation.ErrContentBlocked)
	}
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response text", generation.ErrInvalidResponse)
	}

	return text, nil
}

// classifyAPIError maps a client error onto the generation error taxonomy.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
		case apiErr.Code == 403 && strings.Contains(strings.ToLower(apiErr.Message), "quota"):
			return fmt.Errorf("%w: %v", generation.ErrQuotaExceeded, err)
		case apiErr.Code >= 500:
			return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		default:
			return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "quota") || strings.Contains(msg, "insufficient"):
		return fmt.Errorf("%w: %v", generation.ErrQuotaExceeded, err)
	case strings.Contains(msg, "rate limit") || strings.Contains(msg, "429"):
		return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
	default:
		// Network failures and timeouts land here; treat them as transient.
		return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
	}
}

// isTransient reports whether an error from callModel may resolve on retry.
// Rate limits are retried with backoff; quota exhaustion, blocked content,
// and malformed responses are permanent.
func isTransient(err error) bool {
	switch {
	case errors.Is(err, generation.ErrContentBlocked),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrQuotaExceeded),
		errors.Is(err, generation.ErrGenerationFailed):
		return false
	default:
		return true
	}
}

// Probe makes a minimal generation call to verify that the API key and
// model are usable. The response content is discarded.
func (g *Generator) Probe(ctx context.Context) error {
	timeout := time.Duration(g.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: 5,
	}

	_, err := g.client.Models.GenerateContent(callCtx, g.model, genai.Text("Test"), cfg)
	if err != nil {
		return classifyAPIError(err)
	}
	return nil
}

// temperature samples the creative temperature range for a primary call.
func (g *Generator) temperature() float64 {
	return 0.55 + g.random()*0.25
}

// nextNonce returns a fresh value for prompt variation.
func (g *Generator) nextNonce() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Uint64()
}

// random returns a uniform value in [0, 1) under the generator's lock.
func (g *Generator) random() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()
}
