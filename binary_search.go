package seekgo

import "fmt"

// BinarySearch locates the maximal contiguous run of elements equal to
// target in a view sorted ascending under compare, and returns the run as a
// freshly allocated, exactly sized slice owned by the caller. A miss (and an
// empty view) yields (nil, nil), not an error.
//
// Precondition: the view is sorted consistently with this exact comparator.
// This is a correctness contract, not a checked invariant; behavior on
// unsorted input is undefined.
//
// The run is located in O(log n): a classic binary search finds one
// occurrence (ties broken by the midpoint low+(high-low)/2), then two
// secondary binary searches find the leftmost equal index over [0, found]
// and the rightmost equal index over [found, n-1].
func BinarySearch[T any](v View[T], target T, compare Comparator[T], optFns ...Option) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if err := v.check(); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)

	n := v.Len()
	if n == 0 {
		o.logger.logSearch("binary", 0, 0, nil)
		return nil, nil
	}

	found := -1
	low, high := 0, n-1
	for low <= high {
		mid := low + (high-low)/2
		r, err := compare(v.items[mid], target)
		if err != nil {
			err = fmt.Errorf("compare element %d: %w", mid, err)
			o.logger.logSearch("binary", n, 0, err)
			return nil, err
		}
		switch {
		case r < 0:
			low = mid + 1
		case r > 0:
			high = mid - 1
		default:
			found = mid
		}
		if found >= 0 {
			break
		}
	}

	if found < 0 {
		o.logger.logSearch("binary", n, 0, nil)
		return nil, nil
	}

	first, err := leftmostEqual(v, target, compare, found)
	if err != nil {
		o.logger.logSearch("binary", n, 0, err)
		return nil, err
	}
	last, err := rightmostEqual(v, target, compare, found)
	if err != nil {
		o.logger.logSearch("binary", n, 0, err)
		return nil, err
	}

	run := last - first + 1
	if o.matchLimit > 0 && run > o.matchLimit {
		err := error(&ErrMatchLimit{Limit: o.matchLimit})
		o.logger.logSearch("binary", n, 0, err)
		return nil, err
	}

	matches := make([]T, run)
	copy(matches, v.items[first:last+1])
	o.logger.logSearch("binary", n, run, nil)
	return matches, nil
}

// leftmostEqual narrows [0, found] to the smallest index equal to target.
// Every index in the range compares <= target, so a zero result moves the
// upper bound and a negative result moves the lower bound.
func leftmostEqual[T any](v View[T], target T, compare Comparator[T], found int) (int, error) {
	low, high := 0, found
	for low < high {
		mid := low + (high-low)/2
		r, err := compare(v.items[mid], target)
		if err != nil {
			return 0, fmt.Errorf("compare element %d: %w", mid, err)
		}
		if r == 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return low, nil
}

// rightmostEqual narrows [found, n-1] to the largest index equal to target.
// The midpoint biases upward so the loop terminates.
func rightmostEqual[T any](v View[T], target T, compare Comparator[T], found int) (int, error) {
	low, high := found, v.Len()-1
	for low < high {
		mid := low + (high-low+1)/2
		r, err := compare(v.items[mid], target)
		if err != nil {
			return 0, fmt.Errorf("compare element %d: %w", mid, err)
		}
		if r == 0 {
			low = mid
		} else {
			high = mid - 1
		}
	}
	return low, nil
}
