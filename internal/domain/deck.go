package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Deck-specific validation errors
var (
	ErrDeckIDEmpty = errors.New("deck ID cannot be empty")
	ErrDeckNoCards = errors.New("deck must contain at least one card")
)

// DeckConfig describes one generation attempt: how many cards to produce,
// how many terms each card carries, and the display options applied to the
// finished deck.
type DeckConfig struct {
	CardCount       int    `json:"card_count"`
	TermsPerCard    int    `json:"terms_per_card"`
	UseAugmentation bool   `json:"use_augmentation"`
	DisplayTitle    string `json:"display_title"`
	CategoryLabel   string `json:"category_label,omitempty"`
}

// Validate checks the DeckConfig invariants: at least one card, at least one
// term per card.
func (c DeckConfig) Validate() error {
	if c.CardCount < 1 {
		return ErrInvalidCardCount
	}

	if c.TermsPerCard < 1 {
		return ErrInvalidTermsPerCard
	}

	return nil
}

// TermsNeeded returns the total number of terms this config demands.
func (c DeckConfig) TermsNeeded() int {
	return c.CardCount * c.TermsPerCard
}

// Category returns the effective category label for cards built under this
// config: the explicit override when set, otherwise DefaultCategory.
func (c DeckConfig) Category() string {
	if c.CategoryLabel != "" {
		return c.CategoryLabel
	}
	return DefaultCategory
}

// Deck is the complete result of one generation attempt. It is produced
// atomically: a returned Deck always holds exactly the configured number of
// cards, each with exactly the configured number of terms. Decks are
// read-only after construction.
type Deck struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Cards     []Card    `json:"cards"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDeck creates a new Deck with the given title and cards. It generates a
// new UUID for the deck ID and sets the creation timestamp.
// Returns an error if validation fails.
func NewDeck(title string, cards []Card) (*Deck, error) {
	deck := &Deck{
		ID:        uuid.New(),
		Title:     title,
		Cards:     cards,
		CreatedAt: time.Now().UTC(),
	}

	if err := deck.Validate(); err != nil {
		return nil, err
	}

	return deck, nil
}

// Validate checks if the Deck has valid data.
// Returns an error if any field fails validation.
func (d *Deck) Validate() error {
	if d.ID == uuid.Nil {
		return ErrDeckIDEmpty
	}

	if len(d.Cards) == 0 {
		return ErrDeckNoCards
	}

	for i := range d.Cards {
		if err := d.Cards[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
