package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty input", domain.ErrEmptyInput, http.StatusBadRequest},
		{"invalid card count", domain.ErrInvalidCardCount, http.StatusBadRequest},
		{"invalid terms per card", domain.ErrInvalidTermsPerCard, http.StatusBadRequest},
		{"validation error", domain.NewValidationError("deckID", "cannot be empty", domain.ErrValidation), http.StatusBadRequest},
		{"insufficient terms", domain.NewInsufficientTermsError(10, 4), http.StatusUnprocessableEntity},
		{"wrapped insufficient terms", fmt.Errorf("generate: %w", domain.NewInsufficientTermsError(10, 4)), http.StatusUnprocessableEntity},
		{"deck not found", store.ErrDeckNotFound, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	msg := GetSafeErrorMessage(domain.NewInsufficientTermsError(10, 4))
	assert.Contains(t, msg, "need 10")
	assert.Contains(t, msg, "have 4")

	// Internal details must not leak through the generic path
	msg = GetSafeErrorMessage(errors.New("dial tcp 10.0.0.1:443: connection refused"))
	assert.Equal(t, "Failed to generate deck", msg)
}
