package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestDeckConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := DeckConfig{CardCount: 10, TermsPerCard: 5}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	cfg = DeckConfig{CardCount: 0, TermsPerCard: 5}
	if err := cfg.Validate(); err != ErrInvalidCardCount {
		t.Errorf("Expected error %v, got %v", ErrInvalidCardCount, err)
	}

	cfg = DeckConfig{CardCount: 10, TermsPerCard: 0}
	if err := cfg.Validate(); err != ErrInvalidTermsPerCard {
		t.Errorf("Expected error %v, got %v", ErrInvalidTermsPerCard, err)
	}
}

func TestDeckConfigTermsNeeded(t *testing.T) {
	t.Parallel()

	cfg := DeckConfig{CardCount: 8, TermsPerCard: 5}
	if needed := cfg.TermsNeeded(); needed != 40 {
		t.Errorf("Expected 40 terms needed, got %d", needed)
	}
}

func TestDeckConfigCategory(t *testing.T) {
	t.Parallel()

	cfg := DeckConfig{CardCount: 1, TermsPerCard: 1}
	if got := cfg.Category(); got != DefaultCategory {
		t.Errorf("Expected default category %q, got %q", DefaultCategory, got)
	}

	cfg.CategoryLabel = "Movies"
	if got := cfg.Category(); got != "Movies" {
		t.Errorf("Expected category Movies, got %q", got)
	}
}

func TestNewDeck(t *testing.T) {
	t.Parallel()

	card, err := NewCard(0, DefaultCategory, []string{"cat", "dog"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	deck, err := NewDeck("Party Night", []Card{*card})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if deck.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if deck.Title != "Party Night" {
		t.Errorf("Expected title Party Night, got %s", deck.Title)
	}

	if deck.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Test empty deck
	_, err = NewDeck("Empty", nil)
	if err != ErrDeckNoCards {
		t.Errorf("Expected error %v, got %v", ErrDeckNoCards, err)
	}
}

func TestInsufficientTermsError(t *testing.T) {
	t.Parallel()

	err := NewInsufficientTermsError(10, 4)
	if err.Needed != 10 || err.Have != 4 {
		t.Errorf("Expected needed=10 have=4, got needed=%d have=%d", err.Needed, err.Have)
	}

	var insufficientErr *InsufficientTermsError
	if !errors.As(error(err), &insufficientErr) {
		t.Error("Expected errors.As to match InsufficientTermsError")
	}

	want := "insufficient terms: need 10, have 4"
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}
