package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/quatrainhq/quatrain-api/internal/domain"
	"github.com/quatrainhq/quatrain-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Request validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, generation.ErrEmptyTheme),
		errors.Is(err, domain.ErrEmptyPoemTheme),
		errors.Is(err, domain.ErrThemeTooLong),
		errors.Is(err, domain.ErrInvalidStyle),
		errors.Is(err, domain.ErrInvalidLength):
		return http.StatusBadRequest

	// Upstream throttling
	case errors.Is(err, generation.ErrRateLimited):
		return http.StatusTooManyRequests

	// Quota exhaustion and misconfiguration mean the LLM path is down
	case errors.Is(err, generation.ErrQuotaExceeded),
		errors.Is(err, generation.ErrInvalidConfig):
		return http.StatusServiceUnavailable

	// Safety-filtered themes
	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, generation.ErrEmptyTheme),
		errors.Is(err, domain.ErrEmptyPoemTheme):
		return "Theme cannot be empty"

	case errors.Is(err, domain.ErrThemeTooLong):
		return fmt.Sprintf("Theme must be %d characters or fewer", domain.MaxThemeLength)

	case errors.Is(err, domain.ErrInvalidStyle):
		return "Invalid poem style"

	case errors.Is(err, domain.ErrInvalidLength):
		return "Invalid poem length"

	case errors.Is(err, domain.ErrValidation):
		// ValidationError carries a field-level message that is safe to expose.
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
		}
		return "Invalid request"

	case errors.Is(err, generation.ErrRateLimited):
		return "Generation service is receiving too many requests, please retry shortly"

	case errors.Is(err, generation.ErrQuotaExceeded):
		return "Generation service quota exhausted, please try again later"

	case errors.Is(err, generation.ErrInvalidConfig):
		return "Generation service is not available"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The requested theme was rejected by the content filter"

	default:
		return "Failed to generate poem"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'GeneratePoemRequest.Theme' Error:Field validation for 'Theme' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
