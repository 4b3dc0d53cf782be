package declare

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomagicln/propverify/pkg/strategy"
	"github.com/nomagicln/propverify/pkg/verifier"
)

func testEnv() *env {
	return &env{
		v: verifier.NewPath(nil),
		values: map[string]any{
			"v":    []any{int8(1), int8(2), int8(3)},
			"dup":  []any{uint8(4), uint8(4)},
			"none": []any{},
			"m":    Map{Keys: []any{uint8(1), uint8(7)}, Values: []any{true, false}},
			"some": strategy.Some[any](int32(5)),
			"nil":  strategy.None[any](),
			"ok":   strategy.Ok[any, any](uint16(3)),
			"bad":  strategy.Err[any, any]("boom"),
			"big":  int8(127),
			"u":    uint8(200),
			"f":    float32(2),
			"nan":  math.NaN(),
			"s":    "ab",
		},
	}
}

func names(e *env) []string {
	out := make([]string, 0, len(e.values))
	for k := range e.values {
		out = append(out, k)
	}
	return out
}

func TestExpressions(t *testing.T) {
	tests := []string{
		"Len(v) == 3",
		"Len(s) == 2",
		"Len(m) == 2",
		"Sum(v) == 6",
		"Min(v) == 1 && Max(v) == 3",
		"First(v) == 1 && Last(v) == 3",
		"Sorted(v) && Sorted(dup) && Sorted(m)",
		"Distinct(v) && !Distinct(dup)",
		"Contains(v, 2) && !Contains(v, 4)",
		"Contains(m, 7) && Contains(Values(m), false)",
		"Len(Keys(m)) == 2",
		"Add(Max(v), 1) == 4",
		"Sub(First(v), 2) < 0",
		"Neg(First(v)) == Sub(0, 1)",
		"Mul(u, 1) == 200",
		"u > 100 && v != dup",
		"IsSome(some) && Unwrap(some) == 5 && !IsSome(nil)",
		"IsOk(ok) && Unwrap(ok) == 3 && !IsOk(bad)",
		"f > 1.5 && Add(f, f) == 4",
		`s == "ab" && s < "b"`,
		"nan != nan && !(nan < 1) && !(nan >= 1)",
		"big > 1 || false",
		"true",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			e := testEnv()
			x, err := compileExpr(src, names(e))
			require.NoError(t, err)
			ok, err := x.test(e)
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		src     string
		wantErr string
		failure bool
	}{
		{src: "Min(none) > 0", wantErr: "Min of an empty collection"},
		{src: "Last(none) > 0", wantErr: "Last of an empty collection"},
		{src: "Add(big, 1) > 0", wantErr: "attempt to add with overflow", failure: true},
		{src: "Mul(u, 2) > 0", wantErr: "attempt to multiply with overflow", failure: true},
		{src: "Add(u, 300) > 0", wantErr: "300 does not fit in uint8"},
		{src: "Add(u, big) > 0", wantErr: "operands differ in type"},
		{src: "Unwrap(nil) > 0", wantErr: "called Unwrap on a None value"},
		{src: "Unwrap(bad) > 0", wantErr: "called Unwrap on an Err value: boom"},
		{src: "Len(big) > 0", wantErr: "Len needs a collection"},
		{src: "Keys(v) == v", wantErr: "Keys needs a map"},
		{src: "s < 1", wantErr: "cannot order"},
		{src: "v == 1", wantErr: "cannot compare"},
		{src: "Len(v)", wantErr: "is not a condition"},
		{src: "big && true", wantErr: "expected a condition"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := testEnv()
			x, err := compileExpr(tt.src, names(e))
			require.NoError(t, err)
			_, err = x.test(e)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, tt.failure, verifier.IsFailure(err))
		})
	}
}

func TestCompileExprErrors(t *testing.T) {
	tests := []struct {
		src     string
		wantErr string
	}{
		{"x > 1", `unknown name "x"`},
		{"v.len > 1", "field access is not supported"},
		{"Len(v) >", "invalid expression"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := compileExpr(tt.src, []string{"v"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestOverflowFailsThePath(t *testing.T) {
	p := verifier.NewPath(nil)
	e := &env{v: p, values: map[string]any{"a": int16(math.MaxInt16)}}
	x, err := compileExpr("Add(a, 1) > 0", []string{"a"})
	require.NoError(t, err)

	_, err = x.test(e)
	require.Error(t, err)
	assert.Equal(t, verifier.StatusFailed, p.Status())
	msg, ok := verifier.FailureMessage(p.Err())
	assert.True(t, ok)
	assert.Equal(t, "attempt to add with overflow", msg)
}
