package generation

import "strings"

// Prefixes the model sometimes emits before the actual poem.
var unwantedPrefixes = []string{
	"Here's a poem",
	"Here is a poem",
	"Here's your poem",
	"I'll write",
	"Let me write",
	"A poem about",
	"Title:",
	"Poem:",
	"Verse:",
}

// CleanPoemText strips commentary lines and surrounding quotes from the
// model output, preserving stanza breaks.
func CleanPoemText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			cleaned = append(cleaned, "")
			continue
		}

		skip := false
		for _, prefix := range unwantedPrefixes {
			if len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		// Remove quotes when the entire line is quoted
		if len(line) >= 2 {
			if (strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`)) ||
				(strings.HasPrefix(line, "'") && strings.HasSuffix(line, "'")) {
				line = line[1 : len(line)-1]
			}
		}

		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// ReferencesTheme reports whether the poem mentions the theme, or at least
// one of its significant words. Words of two characters or fewer are
// ignored so articles and prepositions do not count as a match.
func ReferencesTheme(poem, theme string) bool {
	poemLower := strings.ToLower(poem)

	var significant []string
	for _, token := range strings.Fields(theme) {
		if len(token) > 2 {
			significant = append(significant, strings.ToLower(token))
		}
	}

	if len(significant) == 0 {
		return strings.Contains(poemLower, strings.ToLower(theme))
	}

	for _, token := range significant {
		if strings.Contains(poemLower, token) {
			return true
		}
	}
	return false
}
