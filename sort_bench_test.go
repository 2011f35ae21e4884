package seekgo

import (
	"fmt"
	"slices"
	"testing"

	"github.com/hupe1980/seekgo/util"
)

func BenchmarkQuicksort(b *testing.B) {
	rng := util.NewRNG(4711)

	for _, n := range []int{1_000, 10_000, 100_000} {
		input := rng.Ints(n, 1<<20)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			items := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(items, input)
				if err := Quicksort(NewView(items), OrderedComparator[int]()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkQuicksortSorted(b *testing.B) {
	// Already-sorted input is the classic quadratic trap for a fixed
	// last-element pivot; median-of-three keeps it n log n.
	for _, n := range []int{1_000, 10_000} {
		input := make([]int, n)
		for i := range input {
			input[i] = i
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			items := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(items, input)
				if err := Quicksort(NewView(items), OrderedComparator[int]()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkInsertionSortNearlySorted(b *testing.B) {
	rng := util.NewRNG(4711)

	for _, n := range []int{1_000, 10_000} {
		input := rng.SortedRuns(n, 1<<20)
		// A handful of out-of-place elements.
		for i := 0; i < n/100; i++ {
			j := (i * 97) % n
			input[j] = input[j] / 2
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			items := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(items, input)
				if err := InsertionSort(NewView(items), OrderedComparator[int]()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBinarySearch(b *testing.B) {
	rng := util.NewRNG(4711)

	for _, n := range []int{10_000, 1_000_000} {
		items := rng.Ints(n, n/4)
		slices.Sort(items)
		v := NewView(items)
		target := items[n/2]

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := BinarySearch(v, target, OrderedComparator[int]()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLinearSearchRows(b *testing.B) {
	rng := util.NewRNG(4711)

	for _, n := range []int{10_000, 1_000_000} {
		items := rng.Ints(n, 64)
		v := NewView(items)

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := LinearSearchRows(v, 7, OrderedComparator[int]()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
