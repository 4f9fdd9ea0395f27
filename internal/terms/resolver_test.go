package terms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma separated",
			raw:  "cat,dog,bird,fish,tree,rock",
			want: []string{"cat", "dog", "bird", "fish", "tree", "rock"},
		},
		{
			name: "newline separated",
			raw:  "cat\ndog\nbird",
			want: []string{"cat", "dog", "bird"},
		},
		{
			name: "mixed delimiters and runs",
			raw:  "cat,,dog\n\n\nbird,\n,fish",
			want: []string{"cat", "dog", "bird", "fish"},
		},
		{
			name: "windows line endings",
			raw:  "cat\r\ndog\r\nbird",
			want: []string{"cat", "dog", "bird"},
		},
		{
			name: "whitespace trimmed",
			raw:  "  cat , dog ,\t bird ",
			want: []string{"cat", "dog", "bird"},
		},
		{
			name: "multi-word terms survive",
			raw:  "New York, ice cream truck\nthe Eiffel Tower",
			want: []string{"New York", "ice cream truck", "the Eiffel Tower"},
		},
		{
			name: "duplicates preserved",
			raw:  "cat,cat,CAT",
			want: []string{"cat", "cat", "CAT"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only delimiters and whitespace",
			raw:  ",,\n ,\n\t,",
			want: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Resolve(tc.raw)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveEmptyIsDistinguishable(t *testing.T) {
	t.Parallel()

	// "no input" must be a zero-length pool, not nil-panic territory
	got := Resolve(" , ,\n")
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestCycle(t *testing.T) {
	t.Parallel()

	pool := []string{"cat", "dog", "bird", "fish"}

	cycled := Cycle(pool, 10)
	assert.GreaterOrEqual(t, len(cycled), 10)

	// Relative order preserved within each full repetition
	for i, term := range cycled {
		assert.Equal(t, pool[i%len(pool)], term, "position %d", i)
	}

	// Input pool untouched
	assert.Equal(t, []string{"cat", "dog", "bird", "fish"}, pool)
}

func TestCycleAlreadySufficient(t *testing.T) {
	t.Parallel()

	pool := []string{"cat", "dog", "bird"}
	assert.Equal(t, pool, Cycle(pool, 3))
	assert.Equal(t, pool, Cycle(pool, 2))
}

func TestCycleEmptyPool(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Cycle(nil, 10))
	assert.Empty(t, Cycle([]string{}, 10))
}

func TestMerge(t *testing.T) {
	t.Parallel()

	pool := []string{"cat", "dog"}
	extra := []string{"bird", "Cat", "DOG", "fish", "bird"}

	merged := Merge(pool, extra)

	// Case-insensitive dedup of extras against pool and against each other
	assert.Equal(t, []string{"cat", "dog", "bird", "fish"}, merged)

	// Inputs untouched
	assert.Equal(t, []string{"cat", "dog"}, pool)
	assert.Equal(t, []string{"bird", "Cat", "DOG", "fish", "bird"}, extra)
}

func TestMergeIntoEmptyPool(t *testing.T) {
	t.Parallel()

	merged := Merge(nil, []string{"cat", "dog"})
	assert.Equal(t, []string{"cat", "dog"}, merged)
}

func TestSample(t *testing.T) {
	t.Parallel()

	pool := []string{"cat", "dog", "bird"}
	assert.Equal(t, []string{"cat", "dog"}, Sample(pool, 2))
	assert.Equal(t, pool, Sample(pool, 3))
	assert.Equal(t, pool, Sample(pool, 10))
}
