package api

import (
	"errors"
	"net/http"

	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var insufficientErr *domain.InsufficientTermsError

	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrEmptyInput),
		errors.Is(err, domain.ErrInvalidCardCount),
		errors.Is(err, domain.ErrInvalidTermsPerCard),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// The request was well-formed but the term supply cannot satisfy it
	case errors.As(err, &insufficientErr):
		return http.StatusUnprocessableEntity

	// Not found errors
	case errors.Is(err, store.ErrDeckNotFound):
		return http.StatusNotFound

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

	var insufficientErr *domain.InsufficientTermsError

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return "Provide some terms or a topic to generate a deck"

	case errors.Is(err, domain.ErrInvalidCardCount):
		return "Card count must be at least 1"

	case errors.Is(err, domain.ErrInvalidTermsPerCard):
		return "Terms per card must be at least 1"

	// The shortfall numbers are actionable and safe to show
	case errors.As(err, &insufficientErr):
		return insufficientErr.Error()

	case errors.Is(err, store.ErrDeckNotFound):
		return "Deck not found"

	case errors.Is(err, domain.ErrValidation):
		return "Invalid request"

	default:
		return "Failed to generate deck"
	}
}
