package generation

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"text/template"

	"github.com/quatrainhq/quatrain-api/internal/domain"
)

// promptTemplateText is the instruction sent to the model for every
// generation call. The theme requirement is stated twice on purpose:
// models reliably drift onto adjacent topics otherwise.
const promptTemplateText = `{{.Variation}} {{.LengthInstruction}} about "{{.Theme}}".

IMPORTANT: The poem must clearly reference and be grounded in the provided theme: "{{.Theme}}". Use the theme as the central focus throughout. If the theme contains multiple words, use them naturally in the poem (do not invent an unrelated topic).

{{.StyleInstruction}}

{{.Approach}}. The poem should be:
- Directly connected to the given theme and include related wording or imagery
- Emotionally engaging and thoughtful
- Rich in vivid imagery and metaphors
- Well-structured with good rhythm and flow
- Original and creative

Please return only the poem text without any additional commentary, explanations, or quotation marks.`

// promptData is the payload rendered into the prompt template.
type promptData struct {
	Theme             string
	Variation         string
	Approach          string
	LengthInstruction string
	StyleInstruction  string
}

var lengthInstructions = map[domain.PoemLength]string{
	domain.LengthShort:  "Write a concise poem (4-6 lines) that captures the essence beautifully",
	domain.LengthMedium: "Write a well-structured poem (8-12 lines) with rich imagery",
	domain.LengthLong:   "Write an expansive poem (16-20 lines) with deep emotional resonance",
}

var styleInstructions = map[domain.PoemStyle]string{
	domain.StyleHaiku:     "Write a traditional haiku following the 5-7-5 syllable pattern exactly. Focus on nature imagery and a moment in time",
	domain.StyleSonnet:    "Write a Shakespearean sonnet with exactly 14 lines following ABAB CDCD EFEF GG rhyme scheme",
	domain.StyleFreeVerse: "Write a free verse poem with natural speech rhythms, no forced rhymes, focusing on imagery and emotion",
	domain.StyleRhyming:   "Write a poem with a consistent, pleasing rhyme scheme (AABB or ABAB). Make rhymes feel natural, not forced",
	domain.StyleCreative:  "Write an innovative poem using creative techniques: metaphors, symbolism, unique perspectives, and emotional depth",
}

// variationPhrases and approachStyles rotate per request so consecutive
// calls with the same parameters still produce different prompts.
var variationPhrases = []string{
	"Create a unique and original",
	"Compose a fresh and inspiring",
	"Write a distinctive and creative",
	"Craft a beautiful and meaningful",
	"Generate an expressive and heartfelt",
}

var approachStyles = []string{
	"Focus on creating vivid imagery and emotional depth",
	"Emphasize metaphorical language and lyrical beauty",
	"Use rich sensory details and evocative language",
	"Incorporate symbolism and deeper meaning",
	"Blend rhythm, imagery, and emotional resonance",
}

var systemInstructions = []string{
	"You are a world-renowned poet with exceptional talent for creating beautiful, meaningful poetry. Your poems touch hearts and inspire souls with original, emotionally resonant verses.",
	"You are an acclaimed poet known for crafting verses that capture the essence of human experience. Each poem is unique, filled with imagery that speaks to the soul.",
	"You are a master of poetic expression, weaving words into tapestries of emotion and meaning. You create original verses that illuminate life's beauty through metaphor.",
	"You are a visionary poet whose words paint vivid pictures. You excel at creating fresh, original poetry that combines emotional depth with artistic beauty.",
}

// PromptBuilder renders generation prompts from a parsed template.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the built-in prompt template.
func NewPromptBuilder() (*PromptBuilder, error) {
	tmpl, err := template.New("poem").Parse(promptTemplateText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for the given request. The nonce feeds the
// variation selection so repeated requests for the same theme do not
// produce identical prompts.
func (b *PromptBuilder) Build(req PoemRequest, nonce uint64) (string, error) {
	if req.Theme == "" {
		return "", ErrEmptyTheme
	}

	seed := promptSeed(req, nonce)
	// Index the two rotations from different parts of the seed so every
	// variation/approach pairing is reachable.
	data := promptData{
		Theme:             req.Theme,
		Variation:         variationPhrases[seed%uint64(len(variationPhrases))],
		Approach:          approachStyles[(seed/uint64(len(variationPhrases)))%uint64(len(approachStyles))],
		LengthInstruction: lengthInstructions[req.Length],
		StyleInstruction:  styleInstructions[req.Style],
	}

	// Unknown style/length fall back to the creative/medium instructions
	// rather than rendering an empty clause.
	if data.LengthInstruction == "" {
		data.LengthInstruction = lengthInstructions[domain.LengthMedium]
	}
	if data.StyleInstruction == "" {
		data.StyleInstruction = styleInstructions[domain.StyleCreative]
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// SystemInstruction returns the persona instruction for the given request.
// The selection rotates with the nonce for prompt variety.
func SystemInstruction(req PoemRequest, nonce uint64) string {
	seed := promptSeed(req, nonce)
	return systemInstructions[seed%uint64(len(systemInstructions))]
}

// MaxOutputTokens returns the provider token cap for the requested length.
func MaxOutputTokens(length domain.PoemLength) int32 {
	switch length {
	case domain.LengthShort:
		return 200
	case domain.LengthLong:
		return 500
	default:
		return 350
	}
}

// promptSeed derives a stable seed from the request parameters and nonce.
func promptSeed(req PoemRequest, nonce uint64) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s-%s-%s-%d", req.Theme, req.Style, req.Length, nonce)
	return h.Sum64()
}
