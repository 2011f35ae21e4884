package seekgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarySearch(t *testing.T) {
	tests := []struct {
		name   string
		items  []int
		target int
		want   []int
	}{
		{name: "duplicate run", items: []int{1, 3, 3, 3, 5}, target: 3, want: []int{3, 3, 3}},
		{name: "miss between elements", items: []int{1, 3, 3, 3, 5}, target: 2, want: nil},
		{name: "single element hit", items: []int{4}, target: 4, want: []int{4}},
		{name: "single element miss", items: []int{4}, target: 5, want: nil},
		{name: "empty view", items: nil, target: 1, want: nil},
		{name: "run at left edge", items: []int{2, 2, 2, 5, 9}, target: 2, want: []int{2, 2, 2}},
		{name: "run at right edge", items: []int{1, 4, 7, 7}, target: 7, want: []int{7, 7}},
		{name: "whole view equal", items: []int{6, 6, 6, 6}, target: 6, want: []int{6, 6, 6, 6}},
		{name: "miss below range", items: []int{3, 4, 5}, target: 1, want: nil},
		{name: "miss above range", items: []int{3, 4, 5}, target: 9, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches, err := BinarySearch(NewView(tt.items), tt.target, OrderedComparator[int]())
			require.NoError(t, err)
			assert.Equal(t, tt.want, matches)
		})
	}
}

// For sorted views, binary search must return exactly what linear search
// returns.
func TestBinarySearchMatchesLinearSearch(t *testing.T) {
	items := []int{0, 0, 1, 1, 1, 2, 4, 4, 6, 6, 6, 6, 9}
	v := NewView(items)

	for target := -1; target <= 10; target++ {
		fromBinary, err := BinarySearch(v, target, OrderedComparator[int]())
		require.NoError(t, err)
		fromLinear, err := LinearSearch(v, target, OrderedComparator[int]())
		require.NoError(t, err)
		assert.Equal(t, fromLinear, fromBinary, "target %d", target)
	}
}

func TestBinarySearchOwnership(t *testing.T) {
	items := []int{1, 3, 3, 5}
	matches, err := BinarySearch(NewView(items), 3, OrderedComparator[int]())
	require.NoError(t, err)
	require.Equal(t, []int{3, 3}, matches)

	matches[0] = 99
	assert.Equal(t, []int{1, 3, 3, 5}, items)
}

func TestBinarySearchErrors(t *testing.T) {
	v := NewView([]int{1, 2, 3})

	_, err := BinarySearch(v, 1, nil)
	assert.ErrorIs(t, err, ErrNilComparator)

	boom := errors.New("boom")
	_, err = BinarySearch(v, 2, func(a, b int) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestBinarySearchMatchLimit(t *testing.T) {
	v := NewView([]int{3, 3, 3})

	_, err := BinarySearch(v, 3, OrderedComparator[int](), WithMatchLimit(2))
	var limit *ErrMatchLimit
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, 2, limit.Limit)
}

func TestBinarySearchByKey(t *testing.T) {
	type record struct {
		ID   int
		Name string
	}
	items := []record{
		{ID: 1, Name: "a"},
		{ID: 4, Name: "b"},
		{ID: 4, Name: "c"},
		{ID: 8, Name: "d"},
	}
	byID := ComparingBy(func(r record) int { return r.ID })

	matches, err := BinarySearch(NewView(items), record{ID: 4}, byID)
	require.NoError(t, err)
	assert.Equal(t, []record{{ID: 4, Name: "b"}, {ID: 4, Name: "c"}}, matches)
}
