package domain

import (
	"errors"

	"github.com/google/uuid"
)

// DefaultCategory is the category label applied to a card when the deck
// config does not override it.
const DefaultCategory = "Mixed"

// PlaceholderTerm fills a card slot when the term pool runs short. This
// should never appear in output if upstream validation passed; it exists so
// the per-card term count invariant holds unconditionally.
const PlaceholderTerm = "???"

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardNoTerms is returned when a card is built with no terms.
	ErrCardNoTerms = errors.New("card must have at least one term")

	// ErrCardCategoryEmpty is returned when a card's category label is empty.
	ErrCardCategoryEmpty = errors.New("card category cannot be empty")
)

// Card is a single printable game card: a fixed-size ordered list of terms
// under a category label. Cards are immutable once constructed.
type Card struct {
	ID       uuid.UUID `json:"id"`
	Index    int       `json:"index"`
	Category string    `json:"category"`
	Terms    []string  `json:"terms"`
}

// NewCard creates a new Card at the given deck position with the given
// category and terms. It generates a new UUID for the card ID and copies the
// term slice so later pool mutations cannot reach into the card.
// Returns an error if validation fails.
func NewCard(index int, category string, terms []string) (*Card, error) {
	if category == "" {
		category = DefaultCategory
	}

	card := &Card{
		ID:       uuid.New(),
		Index:    index,
		Category: category,
		Terms:    append([]string(nil), terms...),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if len(c.Terms) == 0 {
		return ErrCardNoTerms
	}

	if c.Category == "" {
		return ErrCardCategoryEmpty
	}

	return nil
}
