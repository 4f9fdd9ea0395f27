package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/partydeck/partydeck-api/internal/api/shared"
	"github.com/partydeck/partydeck-api/internal/config"
	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/export"
	"github.com/partydeck/partydeck-api/internal/service"
)

// DeckHandler handles deck-related HTTP requests
type DeckHandler struct {
	deckService service.DeckService
	renderer    *export.Renderer
	limits      config.GenerationConfig
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(
	deckService service.DeckService,
	renderer *export.Renderer,
	limits config.GenerationConfig,
) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		renderer:    renderer,
		limits:      limits,
	}
}

// GenerateDeck handles POST /api/decks requests
func (h *DeckHandler) GenerateDeck(w http.ResponseWriter, r *http.Request) {
	var req GenerateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	// Config-driven upper bounds keep one request from demanding an
	// unprintable deck or an enormous provider call.
	if req.CardCount > h.limits.MaxCardCount {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Card count exceeds the maximum")
		return
	}
	if req.TermsPerCard > h.limits.MaxTermsPerCard {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Terms per card exceeds the maximum")
		return
	}

	deck, err := h.deckService.GenerateDeck(r.Context(), service.GenerateRequest{
		RawText: req.Terms,
		Topic:   req.Topic,
		Config: domain.DeckConfig{
			CardCount:       req.CardCount,
			TermsPerCard:    req.TermsPerCard,
			UseAugmentation: req.UseAugmentation,
			DisplayTitle:    req.Title,
			CategoryLabel:   req.Category,
		},
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, deckToDTOResponse(deck))
}

// ListDecks handles GET /api/decks requests
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.deckService.ListDecks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	responses := make([]DeckResponse, 0, len(decks))
	for _, deck := range decks {
		responses = append(responses, deckToDTOResponse(deck))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetDeck handles GET /api/decks/{deckID} requests
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	deck, ok := h.lookupDeck(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deckToDTOResponse(deck))
}

// PrintDeck handles GET /api/decks/{deckID}/print requests, returning the
// deck as a standalone printable HTML document.
func (h *DeckHandler) PrintDeck(w http.ResponseWriter, r *http.Request) {
	deck, ok := h.lookupDeck(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, deck); err != nil {
		// Headers are already written; the most we can do is log.
		slog.ErrorContext(r.Context(), "failed to render print document",
			"deck_id", deck.ID.String(),
			"error", err)
	}
}

// lookupDeck parses the deckID URL parameter and fetches the deck, writing
// the error response itself when either step fails.
func (h *DeckHandler) lookupDeck(w http.ResponseWriter, r *http.Request) (*domain.Deck, bool) {
	deckID, err := uuid.Parse(chi.URLParam(r, "deckID"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid deck ID")
		return nil, false
	}

	deck, err := h.deckService.GetDeck(r.Context(), deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return nil, false
	}

	return deck, true
}
