// Package supply decides how a term pool reaches the size a deck demands:
// pass the pool through when it is already big enough, augment it from an
// external term provider, or cycle the existing terms when no provider is
// available. All failure modes surface as domain errors; provider failures
// are downgraded to a fallback, never shown to callers directly.
package supply

import (
	"context"
	"log/slog"

	"github.com/partydeck/partydeck-api/internal/domain"
	"github.com/partydeck/partydeck-api/internal/generation"
	"github.com/partydeck/partydeck-api/internal/terms"
)

const (
	// augmentationSurplus is requested on top of the shortfall so that
	// provider-side duplicates filtered out by Merge do not leave the pool
	// short again.
	augmentationSurplus = 3

	// sampleSize bounds how many existing terms are sent to the provider as
	// context for generating matching ones.
	sampleSize = 10
)

// Negotiator sizes a term pool to a deck config's requirement. The provider
// is optional: a nil provider means augmentation is not configured and
// cycling is the only fallback.
type Negotiator struct {
	provider generation.TermProvider
	logger   *slog.Logger
}

// NewNegotiator creates a Negotiator. provider may be nil when no external
// term source is configured.
func NewNegotiator(provider generation.TermProvider, logger *slog.Logger) *Negotiator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Negotiator{
		provider: provider,
		logger:   logger.With(slog.String("component", "supply_negotiator")),
	}
}

// Fill returns a pool of at least cfg.TermsNeeded() terms, or an error when
// that cannot be reached.
//
// The decision ladder:
//   - empty pool: domain.ErrEmptyInput
//   - pool already sufficient: returned unchanged, provider never called
//   - shortfall with augmentation enabled and a provider configured: one
//     provider call for the shortfall plus a small surplus; results are
//     merged case-insensitively; a provider error leaves the pool unchanged
//   - shortfall with augmentation disabled or no provider: the pool is
//     cycled end-to-end until it reaches the requirement
//   - still short after fallbacks: domain.InsufficientTermsError
//
// The input slice is never mutated.
func (n *Negotiator) Fill(
	ctx context.Context,
	pool []string,
	cfg domain.DeckConfig,
	topic string,
) ([]string, error) {
	needed := cfg.TermsNeeded()

	if len(pool) == 0 {
		if topic == "" || !n.canAugment(cfg) {
			return nil, domain.ErrEmptyInput
		}
		// Topic-only generation: the whole pool comes from the provider.
	}

	if len(pool) >= needed {
		return pool, nil
	}

	switch {
	case n.canAugment(cfg):
		pool = n.augment(ctx, pool, needed, topic)
	default:
		pool = terms.Cycle(pool, needed)
	}

	if len(pool) < needed {
		return nil, domain.NewInsufficientTermsError(needed, len(pool))
	}

	return pool, nil
}

// canAugment reports whether an external provider call is both configured
// and permitted by policy.
func (n *Negotiator) canAugment(cfg domain.DeckConfig) bool {
	return cfg.UseAugmentation && n.provider != nil
}

// augment makes the single provider call for this attempt and merges the
// results into the pool. Provider failures are logged and swallowed: the
// original pool comes back unchanged and the final size check decides the
// outcome. This keeps a transient dependency failure from aborting the
// attempt before validation can report an actionable shortfall.
func (n *Negotiator) augment(ctx context.Context, pool []string, needed int, topic string) []string {
	shortfall := needed - len(pool)
	requested := shortfall + augmentationSurplus

	n.logger.InfoContext(ctx, "requesting terms from provider",
		"have", len(pool),
		"needed", needed,
		"requested", requested,
		"topic_present", topic != "")

	extra, err := n.provider.GenerateTerms(ctx, terms.Sample(pool, sampleSize), requested, topic)
	if err != nil {
		n.logger.WarnContext(ctx, "term provider failed, falling back to original pool",
			"error", err,
			"have", len(pool))
		return pool
	}

	merged := terms.Merge(pool, extra)

	n.logger.InfoContext(ctx, "merged provider terms",
		"received", len(extra),
		"added", len(merged)-len(pool),
		"pool_size", len(merged))

	return merged
}
