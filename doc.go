// Package seekgo provides generic, in-memory search and sort routines for Go.
//
// Seekgo is a small, synchronous toolkit: callers hold a contiguous slice of
// any element type, wrap it in a borrowed View, and pass it together with a
// caller-supplied Comparator or Predicate into one of six entry points.
//
// # Quick Start
//
//	records := []int{5, 3, 3, 1, 4}
//	view := seekgo.NewView(records)
//
//	// Sort in place.
//	_ = seekgo.Quicksort(view, seekgo.OrderedComparator[int]())
//
//	// Find every occurrence of a value (the returned slice is owned by you).
//	matches, _ := seekgo.LinearSearch(view, 3, seekgo.OrderedComparator[int]())
//
//	// Filter by predicate.
//	even, _ := seekgo.PredicateSearch(view, func(v int) (bool, error) {
//	    return v%2 == 0, nil
//	})
//
// # Capabilities
//
// A Comparator reports negative/zero/positive together with an error, so a
// failing callback aborts the surrounding routine instead of letting it
// continue on corrupted assumptions. A Predicate works the same way for
// boolean filters. Bound arguments are plain closure captures; see the
// filter subpackage for composable combinators (And, Or, Not, Equal, In,
// Range).
//
// # Ownership
//
// A View never owns the memory it describes; it borrows the slice for the
// duration of a call. Match buffers returned by the search routines are
// freshly allocated, exactly sized, and owned by the caller.
//
// # Row Sets
//
// The *Rows search variants return matching positions as a roaring.Bitmap
// instead of copying elements. Row sets from independent searches combine
// with bitmap AND/OR and materialize once via SelectRows, which keeps
// compound filters cheap on large views.
//
// # Errors
//
// All failures are synchronous error returns: invalid arguments, the
// count*stride overflow guard, an exceeded match limit, or an error signaled
// by the comparator/predicate itself. "No matches" is never an error; it is
// a nil slice with a nil error.
//
// # Concurrency
//
// Every routine is stateless and re-entrant, but the toolkit performs no
// locking of its own: callers mutating a view concurrently must serialize
// themselves.
package seekgo
