package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partydeck/partydeck-api/internal/config"
	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/export"
	"github.com/partydeck/partydeck-api/internal/service"
	"github.com/partydeck/partydeck-api/internal/store"
)

// stubDeckService implements service.DeckService for handler tests.
type stubDeckService struct {
	deck    *domain.Deck
	decks   []*domain.Deck
	err     error
	lastReq service.GenerateRequest
}

func (s *stubDeckService) GenerateDeck(
	_ context.Context,
	req service.GenerateRequest,
) (*domain.Deck, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.deck, nil
}

func (s *stubDeckService) GetDeck(_ context.Context, deckID uuid.UUID) (*domain.Deck, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.deck != nil && s.deck.ID == deckID {
		return s.deck, nil
	}
	return nil, store.ErrDeckNotFound
}

func (s *stubDeckService) ListDecks(_ context.Context) ([]*domain.Deck, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.decks, nil
}

func testLimits() config.GenerationConfig {
	return config.GenerationConfig{MaxCardCount: 100, MaxTermsPerCard: 12}
}

func newRouter(svc service.DeckService) *chi.Mux {
	handler := NewDeckHandler(svc, export.NewRenderer(), testLimits())

	r := chi.NewRouter()
	r.Post("/api/decks", handler.GenerateDeck)
	r.Get("/api/decks", handler.ListDecks)
	r.Get("/api/decks/{deckID}", handler.GetDeck)
	r.Get("/api/decks/{deckID}/print", handler.PrintDeck)
	return r
}

func sampleDeck(t *testing.T) *domain.Deck {
	t.Helper()

	card, err := domain.NewCard(0, domain.DefaultCategory, []string{"cat", "dog", "bird", "fish", "tree"})
	require.NoError(t, err)

	deck, err := domain.NewDeck("Game Night", []domain.Card{*card})
	require.NoError(t, err)
	return deck
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGenerateDeckSuccess(t *testing.T) {
	t.Parallel()

	svc := &stubDeckService{deck: sampleDeck(t)}
	router := newRouter(svc)

	rec := postJSON(t, router, "/api/decks", GenerateDeckRequest{
		Terms:        "cat,dog,bird,fish,tree,rock",
		CardCount:    1,
		TermsPerCard: 5,
		Title:        "Game Night",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp DeckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, svc.deck.ID.String(), resp.ID)
	assert.Equal(t, "Game Night", resp.Title)
	require.Len(t, resp.Cards, 1)
	assert.Len(t, resp.Cards[0].Terms, 5)

	// The handler must pass the raw text through untouched
	assert.Equal(t, "cat,dog,bird,fish,tree,rock", svc.lastReq.RawText)
	assert.Equal(t, 1, svc.lastReq.Config.CardCount)
	assert.Equal(t, 5, svc.lastReq.Config.TermsPerCard)
}

func TestGenerateDeckValidation(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubDeckService{deck: sampleDeck(t)})

	tests := []struct {
		name string
		body GenerateDeckRequest
	}{
		{"zero card count", GenerateDeckRequest{Terms: "cat", CardCount: 0, TermsPerCard: 5}},
		{"zero terms per card", GenerateDeckRequest{Terms: "cat", CardCount: 1, TermsPerCard: 0}},
		{"card count above maximum", GenerateDeckRequest{Terms: "cat", CardCount: 101, TermsPerCard: 5}},
		{"terms per card above maximum", GenerateDeckRequest{Terms: "cat", CardCount: 1, TermsPerCard: 13}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := postJSON(t, router, "/api/decks", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestGenerateDeckMalformedBody(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubDeckService{})

	req := httptest.NewRequest(http.MethodPost, "/api/decks", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateDeckErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "empty input",
			err:        domain.ErrEmptyInput,
			wantStatus: http.StatusBadRequest,
			wantInBody: "terms or a topic",
		},
		{
			name:       "insufficient terms carries the shortfall",
			err:        domain.NewInsufficientTermsError(10, 4),
			wantStatus: http.StatusUnprocessableEntity,
			wantInBody: "need 10, have 4",
		},
		{
			name:       "unexpected error stays generic",
			err:        fmt.Errorf("template execution exploded"),
			wantStatus: http.StatusInternalServerError,
			wantInBody: "Failed to generate deck",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(&stubDeckService{err: tc.err})
			rec := postJSON(t, router, "/api/decks", GenerateDeckRequest{
				Terms:        "cat,dog",
				CardCount:    2,
				TermsPerCard: 5,
			})

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.wantInBody)

			// Raw internal error details must never reach the client
			assert.NotContains(t, rec.Body.String(), "exploded")
		})
	}
}

func TestGetDeck(t *testing.T) {
	t.Parallel()

	deck := sampleDeck(t)
	router := newRouter(&stubDeckService{deck: deck})

	req := httptest.NewRequest(http.MethodGet, "/api/decks/"+deck.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, deck.ID.String(), resp.ID)
}

func TestListDecks(t *testing.T) {
	t.Parallel()

	first := sampleDeck(t)
	second := sampleDeck(t)
	router := newRouter(&stubDeckService{decks: []*domain.Deck{first, second}})

	req := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []DeckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, first.ID.String(), resp[0].ID)
	assert.Equal(t, second.ID.String(), resp[1].ID)
}

func TestListDecksEmpty(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubDeckService{})

	req := httptest.NewRequest(http.MethodGet, "/api/decks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetDeckNotFound(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubDeckService{deck: sampleDeck(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/decks/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDeckInvalidID(t *testing.T) {
	t.Parallel()

	router := newRouter(&stubDeckService{})

	req := httptest.NewRequest(http.MethodGet, "/api/decks/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrintDeck(t *testing.T) {
	t.Parallel()

	deck := sampleDeck(t)
	router := newRouter(&stubDeckService{deck: deck})

	req := httptest.NewRequest(http.MethodGet, "/api/decks/"+deck.ID.String()+"/print", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	for _, term := range deck.Cards[0].Terms {
		assert.Contains(t, rec.Body.String(), term)
	}
}
