package generation

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/quatrainhq/quatrain-api/internal/domain"
)

// Generator defines the interface for producing poems from request
// parameters. This interface serves as a boundary between the application
// core and external AI/LLM services, following the hexagonal architecture
// pattern.
type Generator interface {
	// GeneratePoem produces a poem for the given request.
	// It returns a Poem domain object or an error if generation fails
	// (see errors.go for the specific error types).
	GeneratePoem(ctx context.Context, req PoemRequest) (*domain.Poem, error)
}

// PoemRequest carries the normalized parameters for one generation call.
type PoemRequest struct {
	Theme  string
	Style  domain.PoemStyle
	Length domain.PoemLength
}

// Normalize trims the theme and applies defaults for omitted style and
// length, matching the API contract (style defaults to creative, length
// to medium).
func (r *PoemRequest) Normalize() {
	r.Theme = strings.TrimSpace(r.Theme)
	if r.Style == "" {
		r.Style = domain.StyleCreative
	}
	if r.Length == "" {
		r.Length = domain.LengthMedium
	}
}

// Validate checks the request parameters. Returns a domain.ValidationError
// describing the first failing field.
func (r PoemRequest) Validate() error {
	if strings.TrimSpace(r.Theme) == "" {
		return domain.NewValidationError("theme", "cannot be empty", ErrEmptyTheme)
	}
	if utf8.RuneCountInString(r.Theme) > domain.MaxThemeLength {
		return domain.NewValidationError("theme", "exceeds maximum length", domain.ErrThemeTooLong)
	}
	if !domain.IsValidStyle(r.Style) {
		return domain.NewValidationError("style", "is not a supported poem style", domain.ErrInvalidStyle)
	}
	if !domain.IsValidLength(r.Length) {
		return domain.NewValidationError("length", "is not a supported poem length", domain.ErrInvalidLength)
	}
	return nil
}
