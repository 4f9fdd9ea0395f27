// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyInput is returned when no terms could be parsed from the
	// source text and no topic was supplied, so there is nothing to
	// generate a deck from.
	ErrEmptyInput = errors.New("no terms or topic provided")

	// ErrInvalidCardCount is returned when a deck config requests fewer
	// than one card.
	ErrInvalidCardCount = errors.New("card count must be at least 1")

	// ErrInvalidTermsPerCard is returned when a deck config requests fewer
	// than one term per card.
	ErrInvalidTermsPerCard = errors.New("terms per card must be at least 1")
)

// InsufficientTermsError is returned when the term pool is still smaller
// than the deck requires after every fallback (augmentation, cycling) has
// been attempted. It carries the shortfall so callers can present an
// actionable message.
type InsufficientTermsError struct {
	Needed int
	Have   int
}

// Error implements the error interface.
func (e *InsufficientTermsError) Error() string {
	return fmt.Sprintf("insufficient terms: need %d, have %d", e.Needed, e.Have)
}

// NewInsufficientTermsError creates an InsufficientTermsError with the
// given requirement and actual pool size.
func NewInsufficientTermsError(needed, have int) *InsufficientTermsError {
	return &InsufficientTermsError{Needed: needed, Have: have}
}

// ValidationError provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
