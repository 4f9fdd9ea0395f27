// Package store defines persistence interfaces for the application. Decks
// live only in memory for the lifetime of the process; there is deliberately
// no durable backend.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/partydeck/partydeck-api/internal/domain"
)

// Store-level errors.
var (
	// ErrDeckNotFound is returned when a deck with the given ID does not exist.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrInvalidEntity is returned when an entity fails validation before saving.
	ErrInvalidEntity = errors.New("invalid entity")
)

// DeckStore defines the interface for deck persistence.
type DeckStore interface {
	// Save stores a fully materialized deck. The deck must be valid.
	Save(ctx context.Context, deck *domain.Deck) error

	// GetByID retrieves a deck by its unique ID.
	// Returns ErrDeckNotFound if no deck exists with the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)

	// List returns all stored decks ordered by creation time, oldest first.
	List(ctx context.Context) ([]*domain.Deck, error)
}
