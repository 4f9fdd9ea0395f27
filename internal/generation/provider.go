package generation

import "context"

// TermProvider defines the interface for sourcing additional game terms from
// an external text-generation service. This interface is a boundary between
// the application core and AI/LLM integrations, following the hexagonal
// architecture pattern.
type TermProvider interface {
	// GenerateTerms asks the provider for up to count new terms.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - existing: A sample of terms already in the pool, so generated terms
	//     match their register and avoid repeats
	//   - count: The number of new terms desired; providers may return fewer
	//   - topic: Optional topic hint steering generation when the pool is
	//     empty or thin
	//
	// Returns:
	//   - The generated terms, in provider order
	//   - An error if the provider call fails (see errors.go for specific types)
	GenerateTerms(ctx context.Context, existing []string, count int, topic string) ([]string, error)
}
