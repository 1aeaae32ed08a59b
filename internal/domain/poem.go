package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// PoemStyle identifies the poetic form requested by the caller.
type PoemStyle string

// Supported poem styles.
const (
	StyleCreative  PoemStyle = "creative"
	StyleHaiku     PoemStyle = "haiku"
	StyleSonnet    PoemStyle = "sonnet"
	StyleFreeVerse PoemStyle = "free_verse"
	StyleRhyming   PoemStyle = "rhyming"
)

// PoemLength identifies the requested poem size.
type PoemLength string

// Supported poem lengths.
const (
	LengthShort  PoemLength = "short"
	LengthMedium PoemLength = "medium"
	LengthLong   PoemLength = "long"
)

// GenerationSource records which backend produced a poem.
type GenerationSource string

// Possible generation sources.
const (
	SourceGemini   GenerationSource = "gemini"
	SourceFallback GenerationSource = "fallback"
)

// MaxThemeLength is the maximum number of characters (runes) allowed in a
// theme, matching the validator's max tag on the request DTO.
const MaxThemeLength = 500

// Common validation errors for Poem.
var (
	ErrEmptyPoemID      = errors.New("poem ID cannot be empty")
	ErrEmptyPoemTheme   = errors.New("poem theme cannot be empty")
	ErrThemeTooLong     = errors.New("poem theme exceeds maximum length")
	ErrEmptyPoemText    = errors.New("poem text cannot be empty")
	ErrInvalidStyle     = errors.New("invalid poem style")
	ErrInvalidLength    = errors.New("invalid poem length")
	ErrInvalidSource    = errors.New("invalid generation source")
)

// Poem represents a generated poem together with the parameters
// that produced it.
type Poem struct {
	ID        uuid.UUID        `json:"id"`
	Theme     string           `json:"theme"`
	Style     PoemStyle        `json:"style"`
	Length    PoemLength       `json:"length"`
	Text      string           `json:"text"`
	Source    GenerationSource `json:"source"`
	CreatedAt time.Time        `json:"created_at"`
}

// NewPoem creates a Poem with a fresh ID and creation timestamp.
// The theme is trimmed before validation. Returns an error if any
// field fails validation.
func NewPoem(theme string, style PoemStyle, length PoemLength, text string, source GenerationSource) (*Poem, error) {
	poem := &Poem{
		ID:        uuid.New(),
		Theme:     strings.TrimSpace(theme),
		Style:     style,
		Length:    length,
		Text:      text,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}

	if err := poem.Validate(); err != nil {
		return nil, err
	}

	return poem, nil
}

// Validate checks if the Poem has valid data.
// Returns an error if any field fails validation.
func (p *Poem) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPoemID
	}

	if p.Theme == "" {
		return ErrEmptyPoemTheme
	}

	if utf8.RuneCountInString(p.Theme) > MaxThemeLength {
		return ErrThemeTooLong
	}

	if p.Text == "" {
		return ErrEmptyPoemText
	}

	if !IsValidStyle(p.Style) {
		return ErrInvalidStyle
	}

	if !IsValidLength(p.Length) {
		return ErrInvalidLength
	}

	if !isValidSource(p.Source) {
		return ErrInvalidSource
	}

	return nil
}

// IsValidStyle reports whether the given style is supported.
func IsValidStyle(style PoemStyle) bool {
	switch style {
	case StyleCreative, StyleHaiku, StyleSonnet, StyleFreeVerse, StyleRhyming:
		return true
	default:
		return false
	}
}

// IsValidLength reports whether the given length is supported.
func IsValidLength(length PoemLength) bool {
	switch length {
	case LengthShort, LengthMedium, LengthLong:
		return true
	default:
		return false
	}
}

// isValidSource checks if the given source is a known GenerationSource.
func isValidSource(source GenerationSource) bool {
	switch source {
	case SourceGemini, SourceFallback:
		return true
	default:
		return false
	}
}
