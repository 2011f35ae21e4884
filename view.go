package seekgo

import (
	"math"
	"unsafe"
)

// MaxSize is the limit on the total byte size of a view: count*stride must
// not exceed it. It equals the platform's maximum addressable size.
const MaxSize = math.MaxInt

// View is a borrowed, non-owning description of a contiguous block of
// fixed-stride elements. It never frees or retains the backing slice; it
// only borrows it for the duration of a call.
//
// The zero View is valid and empty.
type View[T any] struct {
	items []T
}

// NewView wraps a slice in a borrowed view. The slice is not copied.
func NewView[T any](items []T) View[T] {
	return View[T]{items: items}
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return len(v.items) }

// Stride returns the fixed byte size of one element.
func (v View[T]) Stride() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// At returns the element at index i. It panics on out-of-range indices,
// matching slice semantics.
func (v View[T]) At(i int) T { return v.items[i] }

// Items exposes the borrowed backing slice. Mutations through the returned
// slice are visible to the view's owner.
func (v View[T]) Items() []T { return v.items }

// Swap exchanges the elements at indices i and j. Swapping an index with
// itself is a no-op. Out-of-range indices return *ErrIndexOutOfRange and
// leave the view untouched.
func (v View[T]) Swap(i, j int) error {
	if i < 0 || i >= len(v.items) {
		return &ErrIndexOutOfRange{Index: i, Len: len(v.items)}
	}
	if j < 0 || j >= len(v.items) {
		return &ErrIndexOutOfRange{Index: j, Len: len(v.items)}
	}
	if i != j {
		v.items[i], v.items[j] = v.items[j], v.items[i]
	}
	return nil
}

// check runs the guard every entry point applies before element access.
func (v View[T]) check() error {
	return CheckSize(len(v.items), v.Stride())
}

// CheckSize validates a (count, stride) pair against the addressable limit.
// A non-positive stride returns ErrZeroStride; count*stride exceeding
// MaxSize returns *ErrSizeOverflow. It has no side effects.
func CheckSize(count, stride int) error {
	if stride <= 0 {
		return ErrZeroStride
	}
	if count > MaxSize/stride {
		return &ErrSizeOverflow{Count: count, Stride: stride}
	}
	return nil
}

// Swap exchanges the values behind a and b. Passing the same pointer twice
// is a documented no-op, not an error. On error neither value is mutated.
func Swap[T any](a, b *T) error {
	if a == nil || b == nil {
		return ErrNilElement
	}
	if a == b {
		return nil
	}
	*a, *b = *b, *a
	return nil
}
