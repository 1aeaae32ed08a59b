package verse

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(nonce uint64) *Composer {
	c := NewComposer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.nonce = func() uint64 { return nonce }
	return c
}

func TestGeneratePoem(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		theme string
	}{
		{name: "love_category", theme: "love and heartbreak"},
		{name: "nature_category", theme: "a mountain river"},
		{name: "dreams_category", theme: "a lucid dream"},
		{name: "custom_theme", theme: "the smell of old books"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, length := range []domain.PoemLength{domain.LengthShort, domain.LengthMedium, domain.LengthLong} {
				poem, err := newTestComposer(1).GeneratePoem(ctx, generation.PoemRequest{
					Theme:  tt.theme,
					Style:  domain.StyleCreative,
					Length: length,
				})
				require.NoError(t, err)
				require.NotNil(t, poem)

				assert.Equal(t, domain.SourceFallback, poem.Source)
				assert.NotEmpty(t, poem.Text)
				assert.NotContains(t, poem.Text, "{", "all placeholders must be filled")
				assert.True(t, generation.ReferencesTheme(poem.Text, tt.theme),
					"poem must reference the theme:\n%s", poem.Text)
			}
		})
	}
}

func TestGeneratePoemAppliesDefaults(t *testing.T) {
	poem, err := newTestComposer(1).GeneratePoem(context.Background(), generation.PoemRequest{
		Theme: "  the harbor at dusk  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "the harbor at dusk", poem.Theme)
	assert.Equal(t, domain.StyleCreative, poem.Style)
	assert.Equal(t, domain.LengthMedium, poem.Length)
}

func TestGeneratePoemValidation(t *testing.T) {
	_, err := newTestComposer(1).GeneratePoem(context.Background(), generation.PoemRequest{Theme: "  "})
	assert.ErrorIs(t, err, generation.ErrEmptyTheme)

	_, err = newTestComposer(1).GeneratePoem(context.Background(), generation.PoemRequest{
		Theme: "rivers",
		Style: "limerick",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStyle)
}

func TestGeneratePoemDeterministicForFixedNonce(t *testing.T) {
	req := generation.PoemRequest{Theme: "winter", Style: domain.StyleCreative, Length: domain.LengthShort}

	first, err := newTestComposer(42).GeneratePoem(context.Background(), req)
	require.NoError(t, err)
	second, err := newTestComposer(42).GeneratePoem(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Text, second.Text)
}

func TestGeneratePoemVariesAcrossNonces(t *testing.T) {
	req := generation.PoemRequest{Theme: "winter", Style: domain.StyleCreative, Length: domain.LengthShort}

	base, err := newTestComposer(0).GeneratePoem(context.Background(), req)
	require.NoError(t, err)

	varied := false
	for nonce := uint64(1); nonce < 20; nonce++ {
		poem, err := newTestComposer(nonce).GeneratePoem(context.Background(), req)
		require.NoError(t, err)
		if poem.Text != base.Text {
			varied = true
			break
		}
	}
	assert.True(t, varied, "output should vary across nonces")
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, "love", categoryFor("My first romance"))
	assert.Equal(t, "nature", categoryFor("the old forest"))
	assert.Equal(t, "dreams", categoryFor("A Night to remember"))
	assert.Equal(t, "", categoryFor("quantum computing"))
}

func TestFillTemplate(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	filled := fillTemplate("The {adjective} {flower} under {Celestial}.", rng)

	assert.NotContains(t, filled, "{")
	assert.NotContains(t, filled, "}")

	// Capitalized placeholder renders a capitalized word.
	fields := strings.Fields(filled)
	last := strings.TrimSuffix(fields[len(fields)-1], ".")
	assert.Equal(t, strings.ToUpper(last[:1]), last[:1])
}
