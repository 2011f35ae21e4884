package seekgo

import "cmp"

// Comparator reports the order of a relative to b: negative when a sorts
// before b, zero when they are equal, positive when a sorts after b.
//
// For the sort routines and BinarySearch the comparator must define a
// consistent strict weak ordering; for LinearSearch any consistent
// equivalence relation suffices. A non-nil error aborts the surrounding
// routine immediately.
type Comparator[T any] func(a, b T) (int, error)

// Predicate reports whether an element matches. Bound arguments are closure
// captures taken by value, so repeated invocations cannot mutate shared
// state. A non-nil error aborts the surrounding routine immediately.
type Predicate[T any] func(item T) (bool, error)

// OrderedComparator returns a Comparator over the natural order of T.
// It never fails.
func OrderedComparator[T cmp.Ordered]() Comparator[T] {
	return func(a, b T) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

// ComparingBy returns a Comparator that orders elements by the given key.
// It never fails.
func ComparingBy[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) (int, error) {
		return cmp.Compare(key(a), key(b)), nil
	}
}

// Reverse inverts the order defined by compare. Errors pass through.
func Reverse[T any](compare Comparator[T]) Comparator[T] {
	return func(a, b T) (int, error) {
		return compare(b, a)
	}
}
