package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/partydeck/partydeck-api/internal/deck"
	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/store"
	"github.com/partydeck/partydeck-api/internal/supply"
	"github.com/partydeck/partydeck-api/internal/terms"
)

// DeckServiceError is a custom error type for deck service errors.
type DeckServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for DeckServiceError.
func (e *DeckServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("deck service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("deck service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DeckServiceError) Unwrap() error {
	return e.Err
}

// NewDeckServiceError creates a new DeckServiceError.
func NewDeckServiceError(operation, message string, err error) *DeckServiceError {
	return &DeckServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// GenerateRequest carries everything one generation attempt reads: the raw
// term text, the optional topic hint, and the deck configuration. Input is
// captured here at the start of an attempt and never re-read mid-attempt.
type GenerateRequest struct {
	RawText string
	Topic   string
	Config  domain.DeckConfig
}

// DeckService provides deck generation and retrieval operations.
type DeckService interface {
	// GenerateDeck runs one full generation attempt: resolve terms, size the
	// pool, assemble the deck, and store the result. It either returns a
	// complete valid deck or an error; a partial deck is never exposed.
	GenerateDeck(ctx context.Context, req GenerateRequest) (*domain.Deck, error)

	// GetDeck retrieves a previously generated deck by its ID.
	GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error)

	// ListDecks returns all decks generated during this process's lifetime,
	// oldest first.
	ListDecks(ctx context.Context) ([]*domain.Deck, error)
}

// deckServiceImpl implements the DeckService interface
type deckServiceImpl struct {
	negotiator *supply.Negotiator
	assembler  *deck.Assembler
	deckStore  store.DeckStore
	logger     *slog.Logger
}

// NewDeckService creates a new DeckService.
// It returns an error if any of the required dependencies are nil.
func NewDeckService(
	negotiator *supply.Negotiator,
	assembler *deck.Assembler,
	deckStore store.DeckStore,
	logger *slog.Logger,
) (DeckService, error) {
	// Validate dependencies
	if negotiator == nil {
		return nil, domain.NewValidationError("negotiator", "cannot be nil", domain.ErrValidation)
	}
	if assembler == nil {
		return nil, domain.NewValidationError("assembler", "cannot be nil", domain.ErrValidation)
	}
	if deckStore == nil {
		return nil, domain.NewValidationError("deckStore", "cannot be nil", domain.ErrValidation)
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &deckServiceImpl{
		negotiator: negotiator,
		assembler:  assembler,
		deckStore:  deckStore,
		logger:     logger.With(slog.String("component", "deck_service")),
	}, nil
}

// GenerateDeck implements DeckService.GenerateDeck.
func (s *deckServiceImpl) GenerateDeck(ctx context.Context, req GenerateRequest) (*domain.Deck, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	pool := terms.Resolve(req.RawText)

	s.logger.InfoContext(ctx, "starting deck generation",
		"resolved_terms", len(pool),
		"card_count", req.Config.CardCount,
		"terms_per_card", req.Config.TermsPerCard,
		"augmentation", req.Config.UseAugmentation)

	pool, err := s.negotiator.Fill(ctx, pool, req.Config, req.Topic)
	if err != nil {
		// Supply errors are domain errors the API layer maps directly
		return nil, err
	}

	generated, err := s.assembler.Assemble(pool, req.Config)
	if err != nil {
		return nil, NewDeckServiceError("generate", "failed to assemble deck", err)
	}

	if err := s.deckStore.Save(ctx, generated); err != nil {
		return nil, NewDeckServiceError("generate", "failed to store deck", err)
	}

	s.logger.InfoContext(ctx, "deck generated",
		"deck_id", generated.ID.String(),
		"cards", len(generated.Cards))

	return generated, nil
}

// GetDeck implements DeckService.GetDeck.
func (s *deckServiceImpl) GetDeck(ctx context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	if deckID == uuid.Nil {
		return nil, domain.NewValidationError("deckID", "cannot be empty", domain.ErrValidation)
	}

	return s.deckStore.GetByID(ctx, deckID)
}

// ListDecks implements DeckService.ListDecks.
func (s *deckServiceImpl) ListDecks(ctx context.Context) ([]*domain.Deck, error) {
	return s.deckStore.List(ctx)
}
