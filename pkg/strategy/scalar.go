package strategy

import (
	"github.com/nomagicln/propverify/pkg/verifier"
)

// AnyStrategy produces any value of a scalar kind.
type AnyStrategy[T verifier.Scalar] struct{}

// Any ranges over every bit pattern of T.
func Any[T verifier.Scalar]() AnyStrategy[T] {
	return AnyStrategy[T]{}
}

// Value draws an unconstrained T.
func (AnyStrategy[T]) Value(v verifier.Verifier) (T, error) {
	return verifier.Symbolic[T](v, "any")
}

// BoolStrategy produces false or true.
type BoolStrategy struct{}

// Bool ranges over both booleans.
func Bool() BoolStrategy {
	return BoolStrategy{}
}

// Value draws a byte restricted to 0 or 1.
func (BoolStrategy) Value(v verifier.Verifier) (bool, error) {
	return verifier.Bool(v, "bool")
}

// CharStrategy produces valid Unicode code points.
type CharStrategy struct{}

// Char ranges over every valid code point.
func Char() CharStrategy {
	return CharStrategy{}
}

// Value draws a 32-bit value and rejects the path if it is not a code point.
func (CharStrategy) Value(v verifier.Verifier) (rune, error) {
	return verifier.Char(v, "char")
}
