package seekgo

import "fmt"

// rangeFrame is a pending [low, high] sub-range awaiting partitioning.
type rangeFrame struct {
	low  int
	high int
}

func (f rangeFrame) size() int { return f.high - f.low + 1 }

// rangeStack replaces native recursion in Quicksort so the pending work
// stays bounded by the smaller partition at each level. It grows
// geometrically.
type rangeStack struct {
	frames []rangeFrame
}

func newRangeStack() *rangeStack {
	return &rangeStack{frames: make([]rangeFrame, 0, 16)}
}

func (s *rangeStack) len() int { return len(s.frames) }

func (s *rangeStack) push(f rangeFrame) {
	if len(s.frames) == cap(s.frames) {
		grown := make([]rangeFrame, len(s.frames), cap(s.frames)*2)
		copy(grown, s.frames)
		s.frames = grown
	}
	s.frames = append(s.frames, f)
}

func (s *rangeStack) pop() rangeFrame {
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// Quicksort sorts the view in place using an iterative quicksort with
// median-of-three pivot selection and an explicit range stack, keeping the
// pending-work depth O(log n) even on sorted or reverse-sorted input.
//
// On a comparator error the sort aborts immediately; the view may be left
// partially reordered (it remains a permutation of the input, but no
// sortedness is guaranteed).
func Quicksort[T any](v View[T], compare Comparator[T], optFns ...Option) error {
	if compare == nil {
		return ErrNilComparator
	}
	if err := v.check(); err != nil {
		return err
	}

	o := applyOptions(optFns)

	n := v.Len()
	if n < 2 {
		o.logger.logSort("quicksort", n, nil)
		return nil
	}

	stack := newRangeStack()
	stack.push(rangeFrame{low: 0, high: n - 1})

	for stack.len() > 0 {
		f := stack.pop()
		if f.low >= f.high {
			continue
		}

		if err := medianToPivot(v, f.low, f.high, compare); err != nil {
			o.logger.logSort("quicksort", n, err)
			return err
		}
		p, err := partition(v, f.low, f.high, compare)
		if err != nil {
			o.logger.logSort("quicksort", n, err)
			return err
		}

		left := rangeFrame{low: f.low, high: p - 1}
		right := rangeFrame{low: p + 1, high: f.high}

		// Larger range first, smaller last: the smaller half is processed
		// next, which bounds the stack depth.
		if left.size() >= right.size() {
			stack.push(left)
			stack.push(right)
		} else {
			stack.push(right)
			stack.push(left)
		}
	}

	o.logger.logSort("quicksort", n, nil)
	return nil
}

// medianToPivot swaps the median of the elements at low, mid and high into
// the high position, where partition expects the pivot. This defeats the
// quadratic behavior of a fixed last-element pivot on already-ordered input.
func medianToPivot[T any](v View[T], low, high int, compare Comparator[T]) error {
	mid := low + (high-low)/2

	a, b, c := low, mid, high
	r, err := compareAt(v, a, b, compare)
	if err != nil {
		return err
	}
	if r > 0 {
		a, b = b, a
	}
	r, err = compareAt(v, b, c, compare)
	if err != nil {
		return err
	}
	if r > 0 {
		b, c = c, b
		r, err = compareAt(v, a, b, compare)
		if err != nil {
			return err
		}
		if r > 0 {
			b = a
		}
	}

	if b != high {
		v.items[b], v.items[high] = v.items[high], v.items[b]
	}
	return nil
}

// partition runs the two-pointer pass over [low, high] with the pivot at
// high: advance left on strictly-less, retreat right on strictly-greater,
// swap until the pointers cross, then place the pivot at its final index.
func partition[T any](v View[T], low, high int, compare Comparator[T]) (int, error) {
	pivot := v.items[high]
	left, right := low, high-1

	for left <= right {
		for {
			r, err := compare(v.items[left], pivot)
			if err != nil {
				return 0, fmt.Errorf("compare element %d with pivot: %w", left, err)
			}
			if r >= 0 {
				break
			}
			left++
		}
		for right >= low {
			r, err := compare(v.items[right], pivot)
			if err != nil {
				return 0, fmt.Errorf("compare element %d with pivot: %w", right, err)
			}
			if r <= 0 {
				break
			}
			right--
		}
		if left <= right {
			v.items[left], v.items[right] = v.items[right], v.items[left]
			left++
			right--
		}
	}

	v.items[left], v.items[high] = v.items[high], v.items[left]
	return left, nil
}

// SelectionSort sorts the view in place in O(n²): for each position, the
// minimum of the remaining suffix is swapped in. Any incidental stability is
// coincidental and not guaranteed.
func SelectionSort[T any](v View[T], compare Comparator[T], optFns ...Option) error {
	if compare == nil {
		return ErrNilComparator
	}
	if err := v.check(); err != nil {
		return err
	}

	o := applyOptions(optFns)
	n := v.Len()

	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			r, err := compareAt(v, j, min, compare)
			if err != nil {
				o.logger.logSort("selection", n, err)
				return err
			}
			if r < 0 {
				min = j
			}
		}
		if min != i {
			v.items[i], v.items[min] = v.items[min], v.items[i]
		}
	}

	o.logger.logSort("selection", n, nil)
	return nil
}

// InsertionSort sorts the view in place in O(n²), swapping each element
// leftward until its left neighbor is not greater. Efficient on small or
// nearly-sorted views.
func InsertionSort[T any](v View[T], compare Comparator[T], optFns ...Option) error {
	if compare == nil {
		return ErrNilComparator
	}
	if err := v.check(); err != nil {
		return err
	}

	o := applyOptions(optFns)
	n := v.Len()

	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			r, err := compareAt(v, j, j-1, compare)
			if err != nil {
				o.logger.logSort("insertion", n, err)
				return err
			}
			if r >= 0 {
				break
			}
			v.items[j], v.items[j-1] = v.items[j-1], v.items[j]
		}
	}

	o.logger.logSort("insertion", n, nil)
	return nil
}

func compareAt[T any](v View[T], i, j int, compare Comparator[T]) (int, error) {
	r, err := compare(v.items[i], v.items[j])
	if err != nil {
		return 0, fmt.Errorf("compare elements %d and %d: %w", i, j, err)
	}
	return r, nil
}
