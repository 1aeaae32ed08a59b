// Package redact provides utilities for redacting sensitive information from
// strings before they are logged. Errors coming back from the generation API
// can embed the API key, request URLs, or host names; this package scrubs
// them so log aggregation never sees credentials.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
)

// Precompiled regex patterns
var (
	// API keys and bearer tokens in error strings
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|bearer|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Google API keys have a recognizable prefix
	googleKeyRegex = regexp.MustCompile(`AIza[A-Za-z0-9_\-]{30,}`)

	// Keys leaked through query strings (the Gemini REST API passes ?key=...)
	queryKeyRegex = regexp.MustCompile(`(?i)([?&]key=)[A-Za-z0-9_\-.~+/]+`)

	// Host names with optional ports
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	// File system paths
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	patterns = []*regexp.Regexp{
		apiKeyRegex, googleKeyRegex, queryKeyRegex, hostPortRegex, unixPathRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		apiKeyRegex:    RedactedKeyPlaceholder,
		googleKeyRegex: RedactedKeyPlaceholder,
		queryKeyRegex:  "${1}" + RedactedKeyPlaceholder,
		hostPortRegex:  RedactedHostPlaceholder,
		unixPathRegex:  RedactedPathPlaceholder,
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, patternPlaceholders[pattern])
	}

	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
