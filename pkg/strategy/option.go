package strategy

import (
	"fmt"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present option.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns an absent option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.some }

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.some }

func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionStrategy produces absent or present values.
type OptionStrategy[T any] struct {
	inner Strategy[T]
}

// Of produces None or Some(x) for every x of s.
func Of[T any](s Strategy[T]) OptionStrategy[T] {
	return OptionStrategy[T]{inner: s}
}

// Value draws a boolean, then a value when it is true.
func (s OptionStrategy[T]) Value(v verifier.Verifier) (Option[T], error) {
	present, err := verifier.Bool(v, "option")
	if err != nil || !present {
		return None[T](), err
	}
	val, err := s.inner.Value(v)
	if err != nil {
		return None[T](), err
	}
	return Some(val), nil
}

// Result holds either a success value or an error value.
type Result[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok returns a successful result.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{ok: value, isOk: true}
}

// Err returns a failed result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the result holds a success value.
func (r Result[T, E]) IsOk() bool { return r.isOk }

// IsErr reports whether the result holds an error value.
func (r Result[T, E]) IsErr() bool { return !r.isOk }

// Ok returns the success value, if any.
func (r Result[T, E]) Ok() (T, bool) { return r.ok, r.isOk }

// Err returns the error value, if any.
func (r Result[T, E]) Err() (E, bool) { return r.err, !r.isOk }

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// ResultStrategy produces success or error values.
type ResultStrategy[T, E any] struct {
	ok  Strategy[T]
	err Strategy[E]
}

// ResultOf produces Ok(x) for every x of ok and Err(e) for every e of err.
func ResultOf[T, E any](ok Strategy[T], err Strategy[E]) ResultStrategy[T, E] {
	return ResultStrategy[T, E]{ok: ok, err: err}
}

// MaybeOk is ResultOf. Without sampling there is no bias to express.
func MaybeOk[T, E any](ok Strategy[T], err Strategy[E]) ResultStrategy[T, E] {
	return ResultOf(ok, err)
}

// MaybeErr is ResultOf. Without sampling there is no bias to express.
func MaybeErr[T, E any](ok Strategy[T], err Strategy[E]) ResultStrategy[T, E] {
	return ResultOf(ok, err)
}

// Value draws a boolean selecting the variant, then the variant's value.
func (s ResultStrategy[T, E]) Value(v verifier.Verifier) (Result[T, E], error) {
	var zero Result[T, E]
	isOk, err := verifier.Bool(v, "result")
	if err != nil {
		return zero, err
	}
	if isOk {
		val, err := s.ok.Value(v)
		if err != nil {
			return zero, err
		}
		return Ok[T, E](val), nil
	}
	e, err := s.err.Value(v)
	if err != nil {
		return zero, err
	}
	return Err[T](e), nil
}
