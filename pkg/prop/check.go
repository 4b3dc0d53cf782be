package prop

import (
	"fmt"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// abort unwinds a body once its path has ended.
type abort struct{}

// T is the checking phase of one path.
type T struct {
	v   verifier.Verifier
	err error
}

// Verifier returns the verifier of the path.
func (t *T) Verifier() verifier.Verifier { return t.v }

// IsReplay reports whether the path replays recorded inputs.
func (t *T) IsReplay() bool { return t.v.IsReplay() }

// Check ends the body with err. Pruning and failures from the verifier are
// kept as they are; any other error fails the path.
func (t *T) Check(err error) {
	if err == nil {
		return
	}
	if verifier.IsPruned(err) || verifier.IsFailure(err) {
		t.err = err
		panic(abort{})
	}
	t.Fail(err.Error())
}

// Fail ends the path as a verification failure.
func (t *T) Fail(msg string) {
	t.err = t.v.ReportError(msg)
	panic(abort{})
}

// Assert fails the path when cond is false.
func (t *T) Assert(cond bool) {
	if !cond {
		t.Fail("verification failed")
	}
}

// Assertf fails the path with a formatted message when cond is false.
func (t *T) Assertf(cond bool, format string, args ...any) {
	if !cond {
		t.Fail(fmt.Sprintf(format, args...))
	}
}

// Assume prunes the path when cond is false.
func (t *T) Assume(cond bool) {
	t.Check(t.v.Assume(cond))
}

// Unreachable fails the path.
func (t *T) Unreachable() {
	t.Fail("unreachable")
}

// Equal fails the path unless got == want.
func Equal[V comparable](t *T, got, want V) {
	if got != want {
		t.Fail(fmt.Sprintf("assertion failed: left == right (left: %v, right: %v)", got, want))
	}
}

// NotEqual fails the path when got == want.
func NotEqual[V comparable](t *T, got, want V) {
	if got == want {
		t.Fail(fmt.Sprintf("assertion failed: left != right (both: %v)", got))
	}
}

// Nondet returns an unconstrained value of the same type as like.
func Nondet[V verifier.Scalar](t *T, like V) V {
	x, err := verifier.Symbolic[V](t.v, "nondet")
	t.Check(err)
	return x
}

// Add returns a+b, failing the path on overflow.
func Add[V verifier.Integer](t *T, a, b V) V {
	r, err := verifier.AddChecked(t.v, a, b)
	t.Check(err)
	return r
}

// Sub returns a-b, failing the path on overflow.
func Sub[V verifier.Integer](t *T, a, b V) V {
	r, err := verifier.SubChecked(t.v, a, b)
	t.Check(err)
	return r
}

// Mul returns a*b, failing the path on overflow.
func Mul[V verifier.Integer](t *T, a, b V) V {
	r, err := verifier.MulChecked(t.v, a, b)
	t.Check(err)
	return r
}
