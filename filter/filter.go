// Package filter provides composable predicates for seekgo's predicate
// search. Combinators build a single seekgo.Predicate out of per-field
// conditions, so compound queries ("cost in range AND rooms equal X") need
// no bespoke scan of their own.
package filter

import (
	"cmp"

	"github.com/hupe1980/seekgo"
)

// And matches when every predicate matches. Evaluation short-circuits on
// the first non-match; a predicate error aborts with that error. With no
// predicates, And matches everything.
func And[T any](preds ...seekgo.Predicate[T]) seekgo.Predicate[T] {
	return func(item T) (bool, error) {
		for _, pred := range preds {
			if pred == nil {
				return false, seekgo.ErrNilPredicate
			}
			ok, err := pred(item)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		return true, nil
	}
}

// Or matches when at least one predicate matches. Evaluation short-circuits
// on the first match; a predicate error aborts with that error. With no
// predicates, Or matches nothing.
func Or[T any](preds ...seekgo.Predicate[T]) seekgo.Predicate[T] {
	return func(item T) (bool, error) {
		for _, pred := range preds {
			if pred == nil {
				return false, seekgo.ErrNilPredicate
			}
			ok, err := pred(item)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

// Not inverts a predicate. Errors pass through.
func Not[T any](pred seekgo.Predicate[T]) seekgo.Predicate[T] {
	return func(item T) (bool, error) {
		if pred == nil {
			return false, seekgo.ErrNilPredicate
		}
		ok, err := pred(item)
		if err != nil {
			return false, err
		}
		return !ok, nil
	}
}

// Equal matches elements whose key equals want.
func Equal[T any, K comparable](key func(T) K, want K) seekgo.Predicate[T] {
	return func(item T) (bool, error) {
		return key(item) == want, nil
	}
}

// In matches elements whose key equals any of the given values.
func In[T any, K comparable](key func(T) K, values ...K) seekgo.Predicate[T] {
	set := make(map[K]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(item T) (bool, error) {
		_, ok := set[key(item)]
		return ok, nil
	}
}

// Range matches elements whose key lies in [lo, hi], inclusive on both ends.
func Range[T any, K cmp.Ordered](key func(T) K, lo, hi K) seekgo.Predicate[T] {
	return func(item T) (bool, error) {
		k := key(item)
		return k >= lo && k <= hi, nil
	}
}
