package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
	"github.com/quatrainhq/quatrain-api/internal/redact"
)

// PoemService defines the application-level poem generation operations.
type PoemService interface {
	// GeneratePoem produces a poem for the request, using the primary
	// generator when available and the fallback composer otherwise.
	GeneratePoem(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error)

	// Info describes the service configuration for the status endpoints.
	Info() ServiceInfo

	// Probe verifies connectivity to the external generation API.
	Probe(ctx context.Context) ProbeResult
}

// ServiceInfo summarizes the generation configuration.
type ServiceInfo struct {
	LLMConfigured     bool     `json:"llm_configured"`
	Model             string   `json:"model,omitempty"`
	FallbackAvailable bool     `json:"fallback_available"`
	SupportedStyles   []string `json:"supported_styles"`
	SupportedLengths  []string `json:"supported_lengths"`
}

// ProbeResult reports the outcome of a connectivity probe.
type ProbeResult struct {
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}

// Prober is implemented by generators that support a lightweight
// connectivity check.
type Prober interface {
	Probe(ctx context.Context) error
}

// poemService is the standard PoemService implementation.
type poemService struct {
	primary  generation.Generator // nil when the LLM is not configured
	fallback generation.Generator
	model    string
	logger   *slog.Logger
}

// NewPoemService creates a PoemService. The primary generator may be nil
// (no API key configured); the fallback composer is required.
func NewPoemService(
	primary generation.Generator,
	fallback generation.Generator,
	model string,
	logger *slog.Logger,
) (PoemService, error) {
	if fallback == nil {
		return nil, errors.New("fallback generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &poemService{
		primary:  primary,
		fallback: fallback,
		model:    model,
		logger:   logger,
	}, nil
}

// GeneratePoem implements PoemService.
//
// Recoverable provider failures are masked by the offline composer.
// Errors the caller must see — invalid parameters, blocked content,
// rate limits, exhausted quota — are returned as-is.
func (s *poemService) GeneratePoem(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if s.primary == nil {
		s.logger.DebugContext(ctx, "no LLM configured, using fallback composer",
			"theme", req.Theme)
		return s.fallback.GeneratePoem(ctx, req)
	}

	poem, err := s.primary.GeneratePoem(ctx, req)
	if err == nil {
		return poem, nil
	}

	if !shouldFallBack(err) {
		return nil, err
	}

	s.logger.WarnContext(ctx, "primary generation failed, using fallback composer",
		"theme", req.Theme,
		"error", redact.Error(err))

	return s.fallback.GeneratePoem(ctx, req)
}

// Info implements PoemService.
func (s *poemService) Info() ServiceInfo {
	return ServiceInfo{
		LLMConfigured:     s.primary != nil,
		Model:             s.model,
		FallbackAvailable: true,
		SupportedStyles: []string{
			string(domain.StyleCreative),
			string(domain.StyleRhyming),
			string(domain.StyleFreeVerse),
			string(domain.StyleHaiku),
			string(domain.StyleSonnet),
		},
		SupportedLengths: []string{
			string(domain.LengthShort),
			string(domain.LengthMedium),
			string(domain.LengthLong),
		},
	}
}

// Probe implements PoemService. It translates probe failures into status
// strings for the status endpoint; raw errors are redacted.
func (s *poemService) Probe(ctx context.Context) ProbeResult {
	if s.primary == nil {
		return ProbeResult{
			Available: false,
			Error:     "not configured",
			Details:   "no API key configured, generation runs on the offline composer",
		}
	}

	prober, ok := s.primary.(Prober)
	if !ok {
		// Generators without a probe are assumed reachable; the first real
		// request will tell.
		return ProbeResult{Available: true, Details: fmt.Sprintf("model %s configured", s.model)}
	}

	if err := prober.Probe(ctx); err != nil {
		return ProbeResult{
			Available: false,
			Error:     probeErrorLabel(err),
			Details:   redact.Error(err),
		}
	}

	return ProbeResult{Available: true, Details: "connection successful"}
}

// shouldFallBack reports whether a primary-generator error can be masked
// by the offline composer.
func shouldFallBack(err error) bool {
	switch {
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrInvalidResponse),
		errors.Is(err, generation.ErrGenerationFailed):
		return true
	default:
		return false
	}
}

// probeErrorLabel maps probe errors to the short labels the status
// endpoint exposes.
func probeErrorLabel(err error) string {
	switch {
	case errors.Is(err, generation.ErrQuotaExceeded):
		return "quota exceeded"
	case errors.Is(err, generation.ErrRateLimited):
		return "rate limited"
	case errors.Is(err, generation.ErrInvalidConfig):
		return "authentication failed"
	default:
		return "connection failed"
	}
}
