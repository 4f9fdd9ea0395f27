package api

import (
	"time"

	"github.com/partydeck/partydeck-api/internal/domain"
)

// GenerateDeckRequest represents the request body for generating a new deck.
// Terms may be empty when a topic is supplied and augmentation is on.
type GenerateDeckRequest struct {
	Terms           string `json:"terms"`
	Topic           string `json:"topic,omitempty"`
	CardCount       int    `json:"card_count"        validate:"required,gte=1"`
	TermsPerCard    int    `json:"terms_per_card"    validate:"required,gte=1"`
	UseAugmentation bool   `json:"use_augmentation"`
	Title           string `json:"title,omitempty"   validate:"max=120"`
	Category        string `json:"category,omitempty" validate:"max=60"`
}

// CardResponse represents the response data for a single card
type CardResponse struct {
	ID       string   `json:"id"`
	Index    int      `json:"index"`
	Category string   `json:"category"`
	Terms    []string `json:"terms"`
}

// DeckResponse represents the response data for a generated deck
type DeckResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Cards     []CardResponse `json:"cards"`
	CreatedAt time.Time      `json:"created_at"`
}

// deckToDTOResponse converts a domain.Deck to a DeckResponse
func deckToDTOResponse(deck *domain.Deck) DeckResponse {
	cards := make([]CardResponse, 0, len(deck.Cards))
	for _, card := range deck.Cards {
		cards = append(cards, CardResponse{
			ID:       card.ID.String(),
			Index:    card.Index,
			Category: card.Category,
			Terms:    card.Terms,
		})
	}

	return DeckResponse{
		ID:        deck.ID.String(),
		Title:     deck.Title,
		Cards:     cards,
		CreatedAt: deck.CreatedAt,
	}
}
