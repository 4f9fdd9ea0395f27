package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrProviderFailure is returned when term generation fails for any general reason
	ErrProviderFailure = errors.New("failed to generate terms")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for temporary errors that might resolve on retry
	ErrTransientFailure = errors.New("transient error during term generation")

	// ErrInvalidConfig is returned when the provider configuration is invalid
	ErrInvalidConfig = errors.New("invalid provider configuration")
)
