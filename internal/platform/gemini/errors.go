package gemini

import "errors"

// Error definitions for the gemini package.
var (
	// ErrEmptyRequest is returned when neither a topic nor any existing
	// terms are available to build a prompt from.
	ErrEmptyRequest = errors.New("term request needs a topic or existing terms")

	// ErrInvalidCount is returned when fewer than one term is requested.
	ErrInvalidCount = errors.New("requested term count must be at least 1")
)
