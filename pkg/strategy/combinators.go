package strategy

import (
	"github.com/nomagicln/propverify/pkg/verifier"
)

// MapStrategy applies a total function to the values of its source.
type MapStrategy[T, O any] struct {
	source Strategy[T]
	fun    func(T) O
}

// Map produces f(x) for every x the source produces.
func Map[T, O any](s Strategy[T], f func(T) O) MapStrategy[T, O] {
	return MapStrategy[T, O]{source: s, fun: f}
}

// Value draws from the source and applies the function.
func (s MapStrategy[T, O]) Value(v verifier.Verifier) (O, error) {
	val, err := s.source.Value(v)
	if err != nil {
		var zero O
		return zero, err
	}
	return s.fun(val), nil
}

// MapIntoStrategy converts the values of its source to another numeric kind.
type MapIntoStrategy[T, O verifier.Scalar] struct {
	source Strategy[T]
}

// MapInto converts every value of s with the language conversion O(x).
func MapInto[O, T verifier.Scalar](s Strategy[T]) MapIntoStrategy[T, O] {
	return MapIntoStrategy[T, O]{source: s}
}

// Value draws from the source and converts.
func (s MapIntoStrategy[T, O]) Value(v verifier.Verifier) (O, error) {
	val, err := s.source.Value(v)
	if err != nil {
		return 0, err
	}
	return O(val), nil
}

// FilterStrategy keeps the paths whose value satisfies a predicate.
type FilterStrategy[T any] struct {
	source Strategy[T]
	whence string
	fun    func(T) bool
}

// Filter assumes pred holds for the produced value. A predicate that never
// holds prunes every path; that is not a failure.
func Filter[T any](s Strategy[T], whence string, pred func(T) bool) FilterStrategy[T] {
	return FilterStrategy[T]{source: s, whence: whence, fun: pred}
}

// Value draws from the source and assumes the predicate.
func (s FilterStrategy[T]) Value(v verifier.Verifier) (T, error) {
	val, err := s.source.Value(v)
	if err != nil {
		return val, err
	}
	return val, v.Assume(s.fun(val))
}

// Whence describes what the filter is for.
func (s FilterStrategy[T]) Whence() string { return s.whence }

// FilterMapStrategy maps values and rejects the ones the function refuses.
type FilterMapStrategy[T, O any] struct {
	source Strategy[T]
	whence string
	fun    func(T) (O, bool)
}

// FilterMap produces f(x) when f accepts x and rejects the path otherwise.
func FilterMap[T, O any](s Strategy[T], whence string, f func(T) (O, bool)) FilterMapStrategy[T, O] {
	return FilterMapStrategy[T, O]{source: s, whence: whence, fun: f}
}

// Value draws from the source and applies the function.
func (s FilterMapStrategy[T, O]) Value(v verifier.Verifier) (O, error) {
	var zero O
	val, err := s.source.Value(v)
	if err != nil {
		return zero, err
	}
	out, ok := s.fun(val)
	if !ok {
		return zero, v.Reject()
	}
	return out, nil
}

// Whence describes what the filter is for.
func (s FilterMapStrategy[T, O]) Whence() string { return s.whence }

// FlatMapStrategy builds a second strategy from each value of the first.
type FlatMapStrategy[T, O any] struct {
	source Strategy[T]
	fun    func(T) Strategy[O]
}

// FlatMap produces a value of f(x) for every x the source produces.
func FlatMap[T, O any](s Strategy[T], f func(T) Strategy[O]) FlatMapStrategy[T, O] {
	return FlatMapStrategy[T, O]{source: s, fun: f}
}

// IndFlatMap is FlatMap. The two only differ in shrinking, which does not exist here.
func IndFlatMap[T, O any](s Strategy[T], f func(T) Strategy[O]) FlatMapStrategy[T, O] {
	return FlatMap(s, f)
}

// Value draws the outer value, then a value of the strategy built from it.
func (s FlatMapStrategy[T, O]) Value(v verifier.Verifier) (O, error) {
	outer, err := s.source.Value(v)
	if err != nil {
		var zero O
		return zero, err
	}
	return s.fun(outer).Value(v)
}

// FlattenStrategy draws from the strategies its source produces.
type FlattenStrategy[T any] struct {
	source Strategy[Strategy[T]]
}

// Flatten turns a strategy of strategies into a strategy of values.
func Flatten[T any](s Strategy[Strategy[T]]) FlattenStrategy[T] {
	return FlattenStrategy[T]{source: s}
}

// Value draws a strategy, then a value from it.
func (s FlattenStrategy[T]) Value(v verifier.Verifier) (T, error) {
	inner, err := s.source.Value(v)
	if err != nil {
		var zero T
		return zero, err
	}
	return inner.Value(v)
}

// IndFlatMap2Strategy keeps the outer value next to the dependent one.
type IndFlatMap2Strategy[T, O any] struct {
	source Strategy[T]
	fun    func(T) Strategy[O]
}

// IndFlatMap2 produces the pair (x, y) where y is drawn from f(x).
func IndFlatMap2[T, O any](s Strategy[T], f func(T) Strategy[O]) IndFlatMap2Strategy[T, O] {
	return IndFlatMap2Strategy[T, O]{source: s, fun: f}
}

// Value draws the outer value and the dependent value.
func (s IndFlatMap2Strategy[T, O]) Value(v verifier.Verifier) (T2[T, O], error) {
	var r T2[T, O]
	outer, err := s.source.Value(v)
	if err != nil {
		return r, err
	}
	inner, err := s.fun(outer).Value(v)
	if err != nil {
		return r, err
	}
	return T2[T, O]{V0: outer, V1: inner}, nil
}

// UnionStrategy chooses between two strategies of the same value type.
type UnionStrategy[T any] struct {
	x Strategy[T]
	y Strategy[T]
}

// Union produces values of x or of y, selected by the parity of one symbolic byte.
func Union[T any](x, y Strategy[T]) UnionStrategy[T] {
	return UnionStrategy[T]{x: x, y: y}
}

// Value draws the selector, then from the selected strategy.
func (s UnionStrategy[T]) Value(v verifier.Verifier) (T, error) {
	sel, err := verifier.Symbolic[uint8](v, "union")
	if err != nil {
		var zero T
		return zero, err
	}
	if sel%2 == 0 {
		return s.x.Value(v)
	}
	return s.y.Value(v)
}

// OneOfStrategy chooses among any number of alternatives.
type OneOfStrategy[T any] struct {
	options []Strategy[T]
}

// OneOf produces values of any of the given strategies.
func OneOf[T any](options ...Strategy[T]) OneOfStrategy[T] {
	return OneOfStrategy[T]{options: options}
}

// Value draws a selector below the number of alternatives, then from that alternative.
func (s OneOfStrategy[T]) Value(v verifier.Verifier) (T, error) {
	var zero T
	n := len(s.options)
	switch n {
	case 0:
		return zero, v.Reject()
	case 1:
		return s.options[0].Value(v)
	}

	var idx int
	if n <= 256 {
		sel, err := verifier.Symbolic[uint8](v, "one_of")
		if err != nil {
			return zero, err
		}
		if err := v.Assume(int(sel) < n); err != nil {
			return zero, err
		}
		idx = int(sel)
	} else {
		verifier.Hint(v, verifier.IntervalOf(uint32(0), uint32(n-1)))
		sel, err := verifier.Symbolic[uint32](v, "one_of")
		if err != nil {
			return zero, err
		}
		// Compared in 64 bits: int may be 32 bits wide.
		if err := v.Assume(uint64(sel) < uint64(n)); err != nil {
			return zero, err
		}
		idx = int(sel)
	}
	return s.options[idx].Value(v)
}
