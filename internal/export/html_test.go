package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partydeck/partydeck-api/internal/domain"
)

func buildDeck(t *testing.T, title string, termSets ...[]string) *domain.Deck {
	t.Helper()

	cards := make([]domain.Card, 0, len(termSets))
	for i, terms := range termSets {
		card, err := domain.NewCard(i, domain.DefaultCategory, terms)
		require.NoError(t, err)
		cards = append(cards, *card)
	}

	deck, err := domain.NewDeck(title, cards)
	require.NoError(t, err)
	return deck
}

func TestRenderContainsEveryTerm(t *testing.T) {
	t.Parallel()

	deck := buildDeck(t, "Game Night",
		[]string{"cat", "dog", "bird"},
		[]string{"fish", "tree", "rock"},
	)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, deck))
	out := buf.String()

	for _, card := range deck.Cards {
		for _, term := range card.Terms {
			assert.Contains(t, out, term)
		}
	}
	assert.Contains(t, out, "Game Night")
	assert.Equal(t, len(deck.Cards), strings.Count(out, `<div class="card">`))
}

func TestRenderEscapesTerms(t *testing.T) {
	t.Parallel()

	deck := buildDeck(t, "Edge Cases", []string{"<script>alert(1)</script>", "salt & pepper"})

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, deck))
	out := buf.String()

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&amp; pepper")
}

func TestRenderDefaultTitle(t *testing.T) {
	t.Parallel()

	deck := buildDeck(t, "", []string{"cat"})

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Render(&buf, deck))
	assert.Contains(t, buf.String(), "Party Deck")
}

func TestRenderRejectsInvalidDeck(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := NewRenderer()

	assert.Error(t, r.Render(&buf, nil))
	assert.Error(t, r.Render(&buf, &domain.Deck{}))
}
