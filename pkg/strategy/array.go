package strategy

import (
	"github.com/nomagicln/propverify/pkg/verifier"
)

//go:generate go run ../../internal/gen -out .

// UniformNStrategy produces slices of a fixed length.
type UniformNStrategy[T any] struct {
	element Strategy[T]
	n       int
}

// UniformN draws exactly n independent elements. It covers lengths the
// generated array family does not.
func UniformN[T any](element Strategy[T], n int) UniformNStrategy[T] {
	return UniformNStrategy[T]{element: element, n: max(n, 0)}
}

// Value draws each element in index order.
func (s UniformNStrategy[T]) Value(v verifier.Verifier) ([]T, error) {
	r := make([]T, s.n)
	for i := range r {
		x, err := s.element.Value(v)
		if err != nil {
			return nil, err
		}
		r[i] = x
	}
	return r, nil
}
