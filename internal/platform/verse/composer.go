// Package verse implements generation.Generator as an offline composer.
// It fills curated stanza templates from word banks, so the service can
// answer poem requests without an external API — when no key is
// configured, or when the Gemini path fails transiently.
package verse

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
)

// Composer produces poems from the built-in template corpus.
type Composer struct {
	logger *slog.Logger

	// nonce perturbs the per-request seed so repeated requests vary.
	// Overridable in tests for deterministic output.
	nonce func() uint64
}

// NewComposer creates a Composer.
func NewComposer(logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		logger: logger,
		nonce:  func() uint64 { return uint64(time.Now().UnixNano()) },
	}
}

// GeneratePoem implements generation.Generator.
// It never fails for a valid request: every theme maps to either a
// curated category or the generic templates.
func (c *Composer) GeneratePoem(ctx context.Context, req generation.PoemRequest) (*domain.Poem, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(int64(c.seed(req))))

	category := categoryFor(req.Theme)
	text := c.compose(req, category, rng)

	c.logger.DebugContext(ctx, "composed fallback poem",
		"theme", req.Theme,
		"category", category,
		"style", req.Style,
		"length", req.Length)

	return domain.NewPoem(req.Theme, req.Style, req.Length, text, domain.SourceFallback)
}

// compose selects and fills a template for the request.
func (c *Composer) compose(req generation.PoemRequest, category string, rng *rand.Rand) string {
	if category != "" {
		if templates, ok := themeTemplates[category][req.Length]; ok && len(templates) > 0 {
			text := fillTemplate(templates[rng.Intn(len(templates))], rng)
			return ensureThemeReference(text, req.Theme)
		}
	}

	templates := customTemplates[req.Length]
	if len(templates) == 0 {
		templates = customTemplates[domain.LengthMedium]
	}
	text := strings.ReplaceAll(templates[rng.Intn(len(templates))], "{theme}", req.Theme)
	return fillTemplate(text, rng)
}

// seed derives the RNG seed from the request parameters and a nonce.
func (c *Composer) seed(req generation.PoemRequest) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s-%s-%s-%d", strings.ToLower(req.Theme), req.Style, req.Length, c.nonce())
	return h.Sum64()
}

// categoryFor matches the theme against the curated categories.
// Returns "" when no category applies.
func categoryFor(theme string) string {
	themeLower := strings.ToLower(theme)

	// Iterate in sorted order so a theme matching several categories
	// resolves the same way every time.
	names := make([]string, 0, len(categoryKeywords))
	for name := range categoryKeywords {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, keyword := range categoryKeywords[name] {
			if strings.Contains(themeLower, keyword) {
				return name
			}
		}
	}
	return ""
}

// fillTemplate replaces every {category} placeholder (and its {Category}
// capitalized variant) with a word drawn from the corresponding bank.
func fillTemplate(text string, rng *rand.Rand) string {
	// Banks are filled in sorted order so the RNG sequence, and thus the
	// output for a fixed seed, is stable.
	categories := make([]string, 0, len(wordBanks))
	for category := range wordBanks {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		words := wordBanks[category]
		word := words[rng.Intn(len(words))]

		text = strings.ReplaceAll(text, "{"+category+"}", word)
		text = strings.ReplaceAll(text, "{"+capitalize(category)+"}", capitalize(word))
	}
	return text
}

// ensureThemeReference appends a closing theme line when the filled
// template does not mention the theme.
func ensureThemeReference(text, theme string) string {
	if generation.ReferencesTheme(text, theme) {
		return text
	}
	return strings.TrimRight(text, "\n ") + fmt.Sprintf("\n\n(about %s)", theme)
}

// capitalize upper-cases the first byte of an ASCII word.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
