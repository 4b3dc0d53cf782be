// Package strategy describes how to produce typed values from the primitives of
// a verification engine.
//
// A Strategy is a small descriptor: a numeric range holds its bounds, a filter
// holds its source and predicate. Building one never touches the engine; every
// symbolic draw and every assumption happens inside Value. Strategies compose
// statically through generic structs. Boxed is the one explicit type-erasure
// point, for when strategies of the same value type must be stored uniformly.
//
// Value returns a *verifier.PrunedError when the path was abandoned and a
// *verifier.Failure when it failed; either way the caller must stop and return it.
package strategy

import (
	"github.com/nomagicln/propverify/pkg/verifier"
)

// Strategy produces one value of T per call to Value.
type Strategy[T any] interface {
	Value(v verifier.Verifier) (T, error)
}

// Func adapts a function drawing directly from the verifier.
type Func[T any] func(v verifier.Verifier) (T, error)

// Value calls f.
func (f Func[T]) Value(v verifier.Verifier) (T, error) {
	return f(v)
}

// FromFuncStrategy produces whatever its function returns.
type FromFuncStrategy[T any] struct {
	fun func() T
}

// FromFunc makes a strategy out of a total function that needs no engine access.
func FromFunc[T any](f func() T) FromFuncStrategy[T] {
	return FromFuncStrategy[T]{fun: f}
}

// Value calls the wrapped function.
func (s FromFuncStrategy[T]) Value(verifier.Verifier) (T, error) {
	return s.fun(), nil
}

// JustStrategy always produces the same value.
type JustStrategy[T any] struct {
	value T
}

// Just is the most trivial strategy.
func Just[T any](value T) JustStrategy[T] {
	return JustStrategy[T]{value: value}
}

// Value returns a copy of the constant.
func (s JustStrategy[T]) Value(verifier.Verifier) (T, error) {
	return s.value, nil
}

// BoxedStrategy hides the concrete type of a strategy.
type BoxedStrategy[T any] struct {
	inner Strategy[T]
}

// Boxed erases the concrete type of s.
func Boxed[T any](s Strategy[T]) BoxedStrategy[T] {
	if b, ok := s.(BoxedStrategy[T]); ok {
		return b
	}
	return BoxedStrategy[T]{inner: s}
}

// Value delegates to the boxed strategy.
func (s BoxedStrategy[T]) Value(v verifier.Verifier) (T, error) {
	return s.inner.Value(v)
}
