package seekgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seekgo/internal/matchbuf"
)

var (
	// ErrNilComparator is returned when a routine requiring a comparator
	// receives nil.
	ErrNilComparator = errors.New("comparator must not be nil")

	// ErrNilPredicate is returned when a routine requiring a predicate
	// receives nil.
	ErrNilPredicate = errors.New("predicate must not be nil")

	// ErrNilElement is returned by Swap when either element pointer is nil.
	ErrNilElement = errors.New("element pointer must not be nil")

	// ErrNilRowSet is returned by SelectRows when the row set is nil.
	ErrNilRowSet = errors.New("row set must not be nil")

	// ErrZeroStride is returned for zero-size element types (e.g. struct{}):
	// such elements carry no data to order or match.
	ErrZeroStride = errors.New("element type must have non-zero size")

	// ErrRowSpaceExhausted is returned by the *Rows variants when the view
	// has more rows than a 32-bit row set can address.
	ErrRowSpaceExhausted = errors.New("view exceeds uint32 row space")
)

// ErrSizeOverflow indicates that count*stride would exceed the addressable
// limit. It is reported before any element access takes place.
type ErrSizeOverflow struct {
	Count  int
	Stride int
}

func (e *ErrSizeOverflow) Error() string {
	return fmt.Sprintf("size overflow: %d elements of %d bytes exceed the addressable limit", e.Count, e.Stride)
}

// ErrMatchLimit indicates that a search produced more matches than the bound
// configured via WithMatchLimit. The partial match buffer is discarded; no
// result is returned alongside this error.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMatchLimit struct {
	Limit int
	cause error
}

func (e *ErrMatchLimit) Error() string {
	return fmt.Sprintf("match limit exceeded: more than %d matches", e.Limit)
}

func (e *ErrMatchLimit) Unwrap() error { return e.cause }

// ErrIndexOutOfRange indicates an element index outside a view's bounds.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for view of length %d", e.Index, e.Len)
}

// translateBufferError maps internal buffer errors onto the public taxonomy.
func translateBufferError(err error, limit int) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, matchbuf.ErrLimit) {
		return &ErrMatchLimit{Limit: limit, cause: err}
	}
	return err
}
