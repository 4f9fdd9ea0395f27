// Package deck partitions a resolved term pool into the fixed-size cards of
// a finished deck. Assembly is the only place cards are created.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/partydeck/partydeck-api/internal/domain"
)

// ShuffleFunc permutes n elements via swap, with the same contract as
// rand.Shuffle. It is injectable so tests can pin the permutation.
type ShuffleFunc func(n int, swap func(i, j int))

// Assembler builds decks from term pools. The zero value is not usable;
// construct with NewAssembler.
type Assembler struct {
	shuffle ShuffleFunc
}

// NewAssembler creates an Assembler backed by the shared math/rand source,
// which is safe for concurrent use.
func NewAssembler() *Assembler {
	return &Assembler{shuffle: rand.Shuffle}
}

// NewAssemblerWithShuffle creates an Assembler with a custom shuffle,
// typically a seeded rand.Rand in tests.
func NewAssemblerWithShuffle(shuffle ShuffleFunc) *Assembler {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}
	return &Assembler{shuffle: shuffle}
}

// Assemble shuffles the pool with a uniform Fisher-Yates permutation and
// partitions it into cfg.CardCount contiguous chunks of cfg.TermsPerCard
// terms. Surplus terms beyond the requirement are dropped. A short chunk is
// padded with domain.PlaceholderTerm so the returned deck always holds
// exactly CardCount cards of exactly TermsPerCard terms each.
//
// Source order never leaks into card order: the permutation is drawn fresh
// for every call. The input pool is not mutated.
func (a *Assembler) Assemble(pool []string, cfg domain.DeckConfig) (*domain.Deck, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	shuffled := append([]string(nil), pool...)
	a.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	category := cfg.Category()
	perCard := cfg.TermsPerCard

	cards := make([]domain.Card, 0, cfg.CardCount)
	for i := 0; i < cfg.CardCount; i++ {
		chunk := make([]string, 0, perCard)

		start := i * perCard
		for j := start; j < start+perCard; j++ {
			if j < len(shuffled) {
				chunk = append(chunk, shuffled[j])
			} else {
				chunk = append(chunk, domain.PlaceholderTerm)
			}
		}

		card, err := domain.NewCard(i, category, chunk)
		if err != nil {
			return nil, fmt.Errorf("building card %d: %w", i, err)
		}

		cards = append(cards, *card)
	}

	return domain.NewDeck(cfg.DisplayTitle, cards)
}
