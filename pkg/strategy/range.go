package strategy

import (
	"fmt"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// Shape is the kind of interval a RangeStrategy covers.
type Shape int

const (
	Exclusive   Shape = iota // start <= x < end
	Inclusive                // start <= x <= end
	From                     // start <= x
	To                       // x < end
	ToInclusive              // x <= end
)

func (s Shape) hasStart() bool {
	return s == Exclusive || s == Inclusive || s == From
}

// RangeStrategy produces scalars inside an interval, compared with the native
// ordering of T. Bounds of an unsigned T cannot be negative; overflow while
// computing bounds is the caller's concern.
type RangeStrategy[T verifier.Scalar] struct {
	start T
	end   T
	shape Shape
}

// Range covers [start, end).
func Range[T verifier.Scalar](start, end T) RangeStrategy[T] {
	return RangeStrategy[T]{start: start, end: end, shape: Exclusive}
}

// RangeInclusive covers [start, end].
func RangeInclusive[T verifier.Scalar](start, end T) RangeStrategy[T] {
	return RangeStrategy[T]{start: start, end: end, shape: Inclusive}
}

// RangeFrom covers [start, max].
func RangeFrom[T verifier.Scalar](start T) RangeStrategy[T] {
	return RangeStrategy[T]{start: start, shape: From}
}

// RangeTo covers [min, end).
func RangeTo[T verifier.Scalar](end T) RangeStrategy[T] {
	return RangeStrategy[T]{end: end, shape: To}
}

// RangeToInclusive covers [min, end].
func RangeToInclusive[T verifier.Scalar](end T) RangeStrategy[T] {
	return RangeStrategy[T]{end: end, shape: ToInclusive}
}

// Value draws a symbolic T and assumes it lies inside the interval. The
// bounds are passed to the engine first, so that it can pick the draw from
// the interval.
func (r RangeStrategy[T]) Value(v verifier.Verifier) (T, error) {
	lo, hi, ok := r.bounds()
	if !ok {
		// Nothing is accepted: a single candidate prunes the path.
		hi = lo
	}
	verifier.Hint(v, verifier.IntervalOf(lo, hi))
	x, err := verifier.Symbolic[T](v, "range")
	if err != nil {
		return x, err
	}
	if r.shape.hasStart() {
		if err := v.Assume(r.start <= x); err != nil {
			return x, err
		}
	}
	switch r.shape {
	case Exclusive, To:
		err = v.Assume(x < r.end)
	case Inclusive, ToInclusive:
		err = v.Assume(x <= r.end)
	}
	return x, err
}

// bounds returns the interval as inclusive bounds. ok is false when the
// interval is empty.
func (r RangeStrategy[T]) bounds() (lo, hi T, ok bool) {
	lo, hi = verifier.Limits[T]()
	if r.shape.hasStart() {
		lo = r.start
	}
	switch r.shape {
	case Inclusive, ToInclusive:
		hi = r.end
	case Exclusive, To:
		if !(lo < r.end) {
			return lo, hi, false
		}
		hi = verifier.Prev(r.end)
	}
	return lo, hi, lo <= hi
}

// Contains reports whether x lies inside the interval.
func (r RangeStrategy[T]) Contains(x T) bool {
	if r.shape.hasStart() && !(r.start <= x) {
		return false
	}
	switch r.shape {
	case Exclusive, To:
		return x < r.end
	case Inclusive, ToInclusive:
		return x <= r.end
	}
	return true
}

// Shape returns the interval kind.
func (r RangeStrategy[T]) Shape() Shape { return r.shape }

func (r RangeStrategy[T]) String() string {
	switch r.shape {
	case Exclusive:
		return fmt.Sprintf("%v..%v", r.start, r.end)
	case Inclusive:
		return fmt.Sprintf("%v..=%v", r.start, r.end)
	case From:
		return fmt.Sprintf("%v..", r.start)
	case To:
		return fmt.Sprintf("..%v", r.end)
	default:
		return fmt.Sprintf("..=%v", r.end)
	}
}
