// Package util provides helpers for generating deterministic test data.
package util

import "math/rand"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Ints generates num random integers in [0, max).
func (r *RNG) Ints(num, max int) []int {
	values := make([]int, num)
	for i := range values {
		values[i] = r.rand.Intn(max)
	}

	return values
}

// SortedRuns generates a sorted slice of num integers drawn from [0, max),
// so duplicates form contiguous runs. Useful for binary-search fixtures.
func (r *RNG) SortedRuns(num, max int) []int {
	values := r.Ints(num, max)
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}

	return values
}

// Shuffled generates the permutation 0..num-1 in random order.
func (r *RNG) Shuffled(num int) []int {
	values := r.rand.Perm(num)
	return values
}
