// Package matchbuf implements the owned, growable result buffer used by the
// search routines: geometric doubling while collecting, shrink-to-fit when
// ownership is handed to the caller.
package matchbuf

import "errors"

// ErrLimit is returned by Append when the configured growth limit would be
// exceeded. The buffer is left unchanged.
var ErrLimit = errors.New("matchbuf: limit exceeded")

const minCapacity = 4

// Buffer collects matches for a single search pass. It is not safe for
// concurrent use; each pass creates its own buffer.
type Buffer[T any] struct {
	items []T
	limit int
}

// New creates an empty buffer. hint pre-sizes the backing storage; limit
// bounds the number of elements (zero or negative means unbounded).
func New[T any](hint, limit int) *Buffer[T] {
	b := &Buffer[T]{limit: limit}
	if hint > 0 {
		b.items = make([]T, 0, hint)
	}
	return b
}

// Len returns the number of collected elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Append adds one element, doubling the backing storage when full.
func (b *Buffer[T]) Append(item T) error {
	if b.limit > 0 && len(b.items) >= b.limit {
		return ErrLimit
	}
	if len(b.items) == cap(b.items) {
		b.grow()
	}
	b.items = append(b.items, item)
	return nil
}

func (b *Buffer[T]) grow() {
	newCap := cap(b.items) * 2
	if newCap < minCapacity {
		newCap = minCapacity
	}
	grown := make([]T, len(b.items), newCap)
	copy(grown, b.items)
	b.items = grown
}

// Take shrinks the collected elements to their exact size and transfers
// ownership to the caller. An empty buffer yields nil. The buffer is reset
// and must not be reused for the same result.
func (b *Buffer[T]) Take() []T {
	if len(b.items) == 0 {
		b.items = nil
		return nil
	}
	out := b.items
	if cap(out) > len(out) {
		exact := make([]T, len(out))
		copy(exact, out)
		out = exact
	}
	b.items = nil
	return out
}
