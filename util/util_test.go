package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInts(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Ints(64, 10)

	assert.Equal(t, 64, len(v))
	for _, x := range v {
		assert.GreaterOrEqual(t, x, 0)
		assert.Less(t, x, 10)
	}
}

func TestSortedRuns(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SortedRuns(64, 8)

	assert.Equal(t, 64, len(v))
	for i := 1; i < len(v); i++ {
		assert.LessOrEqual(t, v[i-1], v[i])
	}
}

func TestShuffled(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.Shuffled(32)

	seen := make(map[int]bool, len(v))
	for _, x := range v {
		seen[x] = true
	}
	assert.Equal(t, 32, len(seen))
}
