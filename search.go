package seekgo

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/seekgo/internal/matchbuf"
)

// LinearSearch scans the view once and collects every element the comparator
// reports equal to target, preserving the original order. The returned slice
// is freshly allocated and owned by the caller; no matches yields (nil, nil).
func LinearSearch[T any](v View[T], target T, compare Comparator[T], optFns ...Option) ([]T, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if err := v.check(); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	buf := matchbuf.New[T](o.capacityHint, o.matchLimit)

	for i, item := range v.items {
		r, err := compare(item, target)
		if err != nil {
			err = fmt.Errorf("compare element %d: %w", i, err)
			o.logger.logSearch("linear", i, buf.Len(), err)
			return nil, err
		}
		if r != 0 {
			continue
		}
		if err := buf.Append(item); err != nil {
			err = translateBufferError(err, o.matchLimit)
			o.logger.logSearch("linear", i, buf.Len(), err)
			return nil, err
		}
	}

	matches := buf.Take()
	o.logger.logSearch("linear", v.Len(), len(matches), nil)
	return matches, nil
}

// PredicateSearch scans the view once and collects every element the
// predicate matches, preserving the original order. The returned slice is
// freshly allocated and owned by the caller; no matches yields (nil, nil).
//
// Compound conditions are expressed by closures or the filter subpackage;
// see And/Or/Not there.
func PredicateSearch[T any](v View[T], match Predicate[T], optFns ...Option) ([]T, error) {
	if match == nil {
		return nil, ErrNilPredicate
	}
	if err := v.check(); err != nil {
		return nil, err
	}

	o := applyOptions(optFns)
	buf := matchbuf.New[T](o.capacityHint, o.matchLimit)

	for i, item := range v.items {
		ok, err := match(item)
		if err != nil {
			err = fmt.Errorf("match element %d: %w", i, err)
			o.logger.logSearch("predicate", i, buf.Len(), err)
			return nil, err
		}
		if !ok {
			continue
		}
		if err := buf.Append(item); err != nil {
			err = translateBufferError(err, o.matchLimit)
			o.logger.logSearch("predicate", i, buf.Len(), err)
			return nil, err
		}
	}

	matches := buf.Take()
	o.logger.logSearch("predicate", v.Len(), len(matches), nil)
	return matches, nil
}

// LinearSearchRows is LinearSearch returning matching positions as a row set
// instead of copying elements. Row sets from independent searches combine
// with roaring.And/roaring.Or and materialize via SelectRows.
func LinearSearchRows[T any](v View[T], target T, compare Comparator[T]) (*roaring.Bitmap, error) {
	if compare == nil {
		return nil, ErrNilComparator
	}
	if err := checkRowSpace(v); err != nil {
		return nil, err
	}

	rows := roaring.New()
	for i, item := range v.items {
		r, err := compare(item, target)
		if err != nil {
			return nil, fmt.Errorf("compare element %d: %w", i, err)
		}
		if r == 0 {
			rows.Add(uint32(i))
		}
	}
	return rows, nil
}

// PredicateSearchRows is PredicateSearch returning matching positions as a
// row set instead of copying elements.
func PredicateSearchRows[T any](v View[T], match Predicate[T]) (*roaring.Bitmap, error) {
	if match == nil {
		return nil, ErrNilPredicate
	}
	if err := checkRowSpace(v); err != nil {
		return nil, err
	}

	rows := roaring.New()
	for i, item := range v.items {
		ok, err := match(item)
		if err != nil {
			return nil, fmt.Errorf("match element %d: %w", i, err)
		}
		if ok {
			rows.Add(uint32(i))
		}
	}
	return rows, nil
}

// SelectRows materializes a row set into an owned slice of elements, in row
// order. Rows outside the view return *ErrIndexOutOfRange.
func SelectRows[T any](v View[T], rows *roaring.Bitmap) ([]T, error) {
	if rows == nil {
		return nil, ErrNilRowSet
	}
	if err := checkRowSpace(v); err != nil {
		return nil, err
	}
	if rows.IsEmpty() {
		return nil, nil
	}

	out := make([]T, 0, rows.GetCardinality())
	it := rows.Iterator()
	for it.HasNext() {
		row := int(it.Next())
		if row >= len(v.items) {
			return nil, &ErrIndexOutOfRange{Index: row, Len: len(v.items)}
		}
		out = append(out, v.items[row])
	}
	return out, nil
}

// checkRowSpace runs the standard guard plus the uint32 row-space bound the
// roaring row sets impose.
func checkRowSpace[T any](v View[T]) error {
	if err := v.check(); err != nil {
		return err
	}
	if uint64(v.Len()) > math.MaxUint32 {
		return ErrRowSpaceExhausted
	}
	return nil
}
