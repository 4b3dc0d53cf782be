package declare

import (
	"fmt"
	"slices"

	"github.com/vulcand/predicate"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// env is what an expression is evaluated against.
type env struct {
	v      verifier.Verifier
	values map[string]any
}

// term is a compiled expression or subexpression. The predicate parser builds
// terms bottom up; literals reach operators and functions as plain values and
// are lifted on use.
type term func(e *env) (any, error)

func lift(x any) term {
	if t, ok := x.(term); ok {
		return t
	}
	return func(*env) (any, error) { return x, nil }
}

// expression is a compiled boolean expression.
type expression struct {
	source string
	eval   term
}

func (x *expression) test(e *env) (bool, error) {
	r, err := x.eval(e)
	if err != nil {
		return false, err
	}
	b, ok := r.(bool)
	if !ok {
		return false, fmt.Errorf("%q is not a condition, it evaluates to %s", x.source, describe(r))
	}
	return b, nil
}

// compileExpr parses src. Identifiers must be in names, or true or false.
//
// The language is that of vulcand/predicate:
//   - literals: integers, floats, strings
//   - operators: && || ! == != < <= > >=
//   - functions: Len Min Max Sum First Last Keys Values Contains Sorted
//     Distinct IsSome IsOk Unwrap Add Sub Mul Neg
//
// Add, Sub, Mul and Neg are checked in the width of their typed operand and
// fail the path on overflow.
func compileExpr(src string, names []string) (*expression, error) {
	parser, err := predicate.NewParser(predicate.Def{
		Operators: predicate.Operators{
			AND: andOp,
			OR:  orOp,
			NOT: notOp,
			EQ:  eqOp,
			NEQ: neqOp,
			LT:  ordering(func(c int) bool { return c < 0 }),
			LE:  ordering(func(c int) bool { return c <= 0 }),
			GT:  ordering(func(c int) bool { return c > 0 }),
			GE:  ordering(func(c int) bool { return c >= 0 }),
		},
		Functions: builtins,
		GetIdentifier: func(selector []string) (interface{}, error) {
			if len(selector) != 1 {
				return nil, fmt.Errorf("field access is not supported: %v", selector)
			}
			name := selector[0]
			switch name {
			case "true":
				return lift(true), nil
			case "false":
				return lift(false), nil
			}
			if !slices.Contains(names, name) {
				return nil, fmt.Errorf("unknown name %q", name)
			}
			return term(func(e *env) (any, error) { return e.values[name], nil }), nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	parsed, err := parser.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", src, err)
	}
	return &expression{source: src, eval: lift(parsed)}, nil
}

func boolOf(e *env, t term) (bool, error) {
	x, err := t(e)
	if err != nil {
		return false, err
	}
	b, ok := x.(bool)
	if !ok {
		return false, fmt.Errorf("expected a condition, got %s", describe(x))
	}
	return b, nil
}

func andOp(a, b any) term {
	x, y := lift(a), lift(b)
	return func(e *env) (any, error) {
		ok, err := boolOf(e, x)
		if err != nil || !ok {
			return false, err
		}
		return boolOf(e, y)
	}
}

func orOp(a, b any) term {
	x, y := lift(a), lift(b)
	return func(e *env) (any, error) {
		ok, err := boolOf(e, x)
		if err != nil || ok {
			return ok, err
		}
		return boolOf(e, y)
	}
}

func notOp(a any) term {
	x := lift(a)
	return func(e *env) (any, error) {
		ok, err := boolOf(e, x)
		return !ok, err
	}
}

func eqOp(a, b any) term {
	return binary(a, b, func(_ *env, x, y any) (any, error) { return equal(x, y) })
}

func neqOp(a, b any) term {
	return binary(a, b, func(_ *env, x, y any) (any, error) {
		eq, err := equal(x, y)
		return !eq, err
	})
}

// ordering builds a relational operator. Unordered operands, such as NaN,
// never satisfy it.
func ordering(holds func(c int) bool) func(a, b any) term {
	return func(a, b any) term {
		return binary(a, b, func(_ *env, x, y any) (any, error) {
			c, ordered, err := compare(x, y)
			if err != nil {
				return nil, err
			}
			return ordered && holds(c), nil
		})
	}
}

func unary(a any, f func(e *env, x any) (any, error)) term {
	t := lift(a)
	return func(e *env) (any, error) {
		x, err := t(e)
		if err != nil {
			return nil, err
		}
		return f(e, x)
	}
}

func binary(a, b any, f func(e *env, x, y any) (any, error)) term {
	ta, tb := lift(a), lift(b)
	return func(e *env) (any, error) {
		x, err := ta(e)
		if err != nil {
			return nil, err
		}
		y, err := tb(e)
		if err != nil {
			return nil, err
		}
		return f(e, x, y)
	}
}
