// Package terms turns raw pasted text into a working pool of game terms and
// provides the pool operations (cycling, deduplicating merge, sampling) the
// supply negotiator builds on. It performs no I/O.
package terms

import "strings"

// isDelimiter reports whether r separates terms in raw input. A run of one
// or more delimiter characters counts as a single separator.
func isDelimiter(r rune) bool {
	return r == ',' || r == '\n' || r == '\r'
}

// Resolve splits raw text into an ordered list of non-empty trimmed terms.
// Terms are separated by commas or newlines; runs of either collapse into a
// single separator. An empty result is legal and signals "no input".
// Duplicates are preserved: only the augmentation path deduplicates.
func Resolve(raw string) []string {
	fields := strings.FieldsFunc(raw, isDelimiter)

	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		term := strings.TrimSpace(field)
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}

	return terms
}

// Cycle repeats the whole pool end-to-end until its length reaches needed,
// preserving term values and relative order within each repetition. It
// returns a new slice; the input is never mutated. An empty pool cannot be
// cycled and is returned as-is.
func Cycle(pool []string, needed int) []string {
	if len(pool) == 0 || len(pool) >= needed {
		return pool
	}

	cycled := make([]string, 0, needed)
	for len(cycled) < needed {
		cycled = append(cycled, pool...)
	}

	return cycled
}

// Merge appends the extra terms to the pool, skipping any extra whose
// lowercase form is already present in the pool or earlier in the extras.
// It returns a new slice; neither input is mutated.
func Merge(pool, extra []string) []string {
	seen := make(map[string]struct{}, len(pool)+len(extra))
	for _, term := range pool {
		seen[strings.ToLower(term)] = struct{}{}
	}

	merged := append([]string(nil), pool...)
	for _, term := range extra {
		key := strings.ToLower(term)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, term)
	}

	return merged
}

// Sample returns up to n terms from the front of the pool. It is used to
// show the external provider what kind of terms the deck already has.
func Sample(pool []string, n int) []string {
	if n >= len(pool) {
		return pool
	}
	return pool[:n]
}
