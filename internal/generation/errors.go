package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when poem generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate poem")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during poem generation")

	// ErrRateLimited is returned when the provider rejects the call for exceeding
	// its request rate
	ErrRateLimited = errors.New("language model rate limit exceeded")

	// ErrQuotaExceeded is returned when the provider account has run out of quota
	ErrQuotaExceeded = errors.New("language model quota exceeded")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyTheme is returned when a request carries no theme text
	ErrEmptyTheme = errors.New("theme cannot be empty")
)
