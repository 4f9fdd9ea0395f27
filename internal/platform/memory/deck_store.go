// Package memory provides in-memory implementations of the store interfaces.
// This is the only persistence the application has: decks survive for the
// lifetime of the process and no longer.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/store"
)

// DeckStore is a mutex-guarded in-memory deck store. It is safe for
// concurrent use.
type DeckStore struct {
	mu    sync.RWMutex
	decks map[uuid.UUID]*domain.Deck
}

// NewDeckStore creates an empty in-memory deck store.
func NewDeckStore() *DeckStore {
	return &DeckStore{
		decks: make(map[uuid.UUID]*domain.Deck),
	}
}

// Save stores a deck, replacing any previous deck with the same ID.
func (s *DeckStore) Save(_ context.Context, deck *domain.Deck) error {
	if deck == nil {
		return fmt.Errorf("%w: deck is nil", store.ErrInvalidEntity)
	}

	if err := deck.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.decks[deck.ID] = deck

	return nil
}

// GetByID retrieves a deck by its unique ID.
// Returns store.ErrDeckNotFound if no deck exists with the given ID.
func (s *DeckStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deck, ok := s.decks[id]
	if !ok {
		return nil, store.ErrDeckNotFound
	}

	return deck, nil
}

// List returns all stored decks ordered by creation time, oldest first.
// Decks created in the same instant are ordered by ID for determinism.
func (s *DeckStore) List(_ context.Context) ([]*domain.Deck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	decks := make([]*domain.Deck, 0, len(s.decks))
	for _, deck := range s.decks {
		decks = append(decks, deck)
	}

	sort.Slice(decks, func(i, j int) bool {
		if !decks[i].CreatedAt.Equal(decks[j].CreatedAt) {
			return decks[i].CreatedAt.Before(decks[j].CreatedAt)
		}
		return decks[i].ID.String() < decks[j].ID.String()
	})

	return decks, nil
}

var _ store.DeckStore = (*DeckStore)(nil)
