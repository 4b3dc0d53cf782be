package declare

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/nomagicln/propverify/pkg/strategy"
	"github.com/nomagicln/propverify/pkg/verifier"
)

var builtins = map[string]interface{}{
	"Len": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			if s, ok := x.(string); ok {
				return utf8.RuneCountInString(s), nil
			}
			xs, err := elements("Len", x)
			return len(xs), err
		})
	},
	"Min": func(a any) term { return unary(a, extreme("Min", -1)) },
	"Max": func(a any) term { return unary(a, extreme("Max", 1)) },
	"Sum": func(a any) term {
		return unary(a, func(e *env, x any) (any, error) {
			xs, err := elements("Sum", x)
			if err != nil || len(xs) == 0 {
				return 0, err
			}
			acc := xs[0]
			for _, y := range xs[1:] {
				if acc, err = arith(e.v, opAdd, acc, y); err != nil {
					return nil, err
				}
			}
			return acc, nil
		})
	},
	"First": func(a any) term { return unary(a, nth("First", false)) },
	"Last":  func(a any) term { return unary(a, nth("Last", true)) },
	"Keys": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			m, ok := x.(Map)
			if !ok {
				return nil, fmt.Errorf("Keys needs a map, got %s", describe(x))
			}
			return m.Keys, nil
		})
	},
	"Values": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			m, ok := x.(Map)
			if !ok {
				return nil, fmt.Errorf("Values needs a map, got %s", describe(x))
			}
			return m.Values, nil
		})
	},
	"Contains": func(a, b any) term {
		return binary(a, b, func(_ *env, x, y any) (any, error) {
			xs, err := elements("Contains", x)
			if err != nil {
				return nil, err
			}
			for _, el := range xs {
				if eq, err := equal(el, y); err == nil && eq {
					return true, nil
				}
			}
			return false, nil
		})
	},
	"Sorted": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			xs, err := elements("Sorted", x)
			if err != nil {
				return nil, err
			}
			for i := 1; i < len(xs); i++ {
				c, ordered, err := compare(xs[i-1], xs[i])
				if err != nil {
					return nil, err
				}
				if !ordered || c > 0 {
					return false, nil
				}
			}
			return true, nil
		})
	},
	"Distinct": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			xs, err := elements("Distinct", x)
			if err != nil {
				return nil, err
			}
			for i := range xs {
				for j := i + 1; j < len(xs); j++ {
					if eq, _ := equal(xs[i], xs[j]); eq {
						return false, nil
					}
				}
			}
			return true, nil
		})
	},
	"IsSome": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			o, ok := x.(strategy.Option[any])
			if !ok {
				return nil, fmt.Errorf("IsSome needs an option, got %s", describe(x))
			}
			return o.IsSome(), nil
		})
	},
	"IsOk": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			r, ok := x.(strategy.Result[any, any])
			if !ok {
				return nil, fmt.Errorf("IsOk needs a result, got %s", describe(x))
			}
			return r.IsOk(), nil
		})
	},
	"Unwrap": func(a any) term {
		return unary(a, func(_ *env, x any) (any, error) {
			switch w := x.(type) {
			case strategy.Option[any]:
				if v, ok := w.Get(); ok {
					return v, nil
				}
				return nil, errors.New("called Unwrap on a None value")
			case strategy.Result[any, any]:
				if v, ok := w.Ok(); ok {
					return v, nil
				}
				bad, _ := w.Err()
				return nil, fmt.Errorf("called Unwrap on an Err value: %v", bad)
			}
			return nil, fmt.Errorf("Unwrap needs an option or a result, got %s", describe(x))
		})
	},
	"Add": func(a, b any) term {
		return binary(a, b, func(e *env, x, y any) (any, error) { return arith(e.v, opAdd, x, y) })
	},
	"Sub": func(a, b any) term {
		return binary(a, b, func(e *env, x, y any) (any, error) { return arith(e.v, opSub, x, y) })
	},
	"Mul": func(a, b any) term {
		return binary(a, b, func(e *env, x, y any) (any, error) { return arith(e.v, opMul, x, y) })
	},
	"Neg": func(a any) term {
		return unary(a, func(e *env, x any) (any, error) {
			if !isNumber(x) {
				return nil, fmt.Errorf("Neg needs a number, got %s", describe(x))
			}
			zero := reflect.Zero(reflect.TypeOf(x)).Interface()
			return arith(e.v, opSub, zero, x)
		})
	},
}

func describe(x any) string {
	if x == nil {
		return "nothing"
	}
	return fmt.Sprintf("%v (%T)", x, x)
}

// elements returns the members of a collection value. A map contributes its keys.
func elements(fn string, x any) ([]any, error) {
	switch c := x.(type) {
	case []any:
		return c, nil
	case Map:
		return c.Keys, nil
	}
	return nil, fmt.Errorf("%s needs a collection, got %s", fn, describe(x))
}

func extreme(fn string, sign int) func(*env, any) (any, error) {
	return func(_ *env, x any) (any, error) {
		xs, err := elements(fn, x)
		if err != nil {
			return nil, err
		}
		if len(xs) == 0 {
			return nil, fmt.Errorf("%s of an empty collection", fn)
		}
		best := xs[0]
		for _, y := range xs[1:] {
			c, ordered, err := compare(y, best)
			if err != nil {
				return nil, err
			}
			if ordered && c*sign > 0 {
				best = y
			}
		}
		return best, nil
	}
}

func nth(fn string, last bool) func(*env, any) (any, error) {
	return func(_ *env, x any) (any, error) {
		xs, err := elements(fn, x)
		if err != nil {
			return nil, err
		}
		if len(xs) == 0 {
			return nil, fmt.Errorf("%s of an empty collection", fn)
		}
		if last {
			return xs[len(xs)-1], nil
		}
		return xs[0], nil
	}
}

// number is a scalar widened for comparison.
type number struct {
	kind reflect.Kind // Int64, Uint64 or Float64
	i    int64
	u    uint64
	f    float64
}

func isNumber(x any) bool {
	_, ok := toNumber(x)
	return ok
}

func toNumber(x any) (number, bool) {
	if x == nil {
		return number{}, false
	}
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{kind: reflect.Int64, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return number{kind: reflect.Uint64, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return number{kind: reflect.Float64, f: rv.Float()}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	switch n.kind {
	case reflect.Int64:
		return float64(n.i)
	case reflect.Uint64:
		return float64(n.u)
	}
	return n.f
}

func cmp3[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareNumbers orders a and b by value regardless of their types. ordered is
// false when either is NaN.
func compareNumbers(a, b number) (c int, ordered bool) {
	switch {
	case a.kind == reflect.Float64 || b.kind == reflect.Float64:
		x, y := a.float(), b.float()
		if math.IsNaN(x) || math.IsNaN(y) {
			return 0, false
		}
		return cmp3(x, y), true
	case a.kind == reflect.Int64 && b.kind == reflect.Int64:
		return cmp3(a.i, b.i), true
	case a.kind == reflect.Uint64 && b.kind == reflect.Uint64:
		return cmp3(a.u, b.u), true
	case a.kind == reflect.Int64:
		if a.i < 0 {
			return -1, true
		}
		return cmp3(uint64(a.i), b.u), true
	default:
		if b.i < 0 {
			return 1, true
		}
		return cmp3(a.u, uint64(b.i)), true
	}
}

// compare orders numbers by value and strings lexically.
func compare(x, y any) (c int, ordered bool, err error) {
	if a, ok := toNumber(x); ok {
		if b, ok := toNumber(y); ok {
			c, ordered = compareNumbers(a, b)
			return c, ordered, nil
		}
	}
	if a, ok := x.(string); ok {
		if b, ok := y.(string); ok {
			switch {
			case a < b:
				return -1, true, nil
			case a > b:
				return 1, true, nil
			}
			return 0, true, nil
		}
	}
	return 0, false, fmt.Errorf("cannot order %s and %s", describe(x), describe(y))
}

// equal compares numbers by value and collections element by element.
func equal(x, y any) (bool, error) {
	if a, ok := toNumber(x); ok {
		b, ok := toNumber(y)
		if !ok {
			return false, fmt.Errorf("cannot compare %s with %s", describe(x), describe(y))
		}
		c, ordered := compareNumbers(a, b)
		return ordered && c == 0, nil
	}
	switch a := x.(type) {
	case []any:
		b, ok := y.([]any)
		if !ok {
			return false, fmt.Errorf("cannot compare %s with %s", describe(x), describe(y))
		}
		if len(a) != len(b) {
			return false, nil
		}
		for i := range a {
			if eq, err := equal(a[i], b[i]); err != nil || !eq {
				return false, err
			}
		}
		return true, nil
	case Map:
		b, ok := y.(Map)
		if !ok {
			return false, fmt.Errorf("cannot compare %s with %s", describe(x), describe(y))
		}
		keys, err := equal(a.Keys, b.Keys)
		if err != nil || !keys {
			return false, err
		}
		return equal(a.Values, b.Values)
	}
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false, fmt.Errorf("cannot compare %s with %s", describe(x), describe(y))
	}
	return reflect.DeepEqual(x, y), nil
}

type arithOp int

const (
	opAdd arithOp = iota
	opSub
	opMul
)

func (op arithOp) String() string {
	return [...]string{"Add", "Sub", "Mul"}[op]
}

// arith applies op in the type of its operands. A plain int operand, which is
// what literals parse to, takes the type of the other operand.
func arith(v verifier.Verifier, op arithOp, x, y any) (any, error) {
	if !isNumber(x) || !isNumber(y) {
		return nil, fmt.Errorf("%s needs numbers, got %s and %s", op, describe(x), describe(y))
	}
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	var err error
	switch {
	case tx == ty:
	case tx.Kind() == reflect.Int:
		x, err = convertLiteral(op, x, ty)
	case ty.Kind() == reflect.Int:
		y, err = convertLiteral(op, y, tx)
	default:
		err = fmt.Errorf("%s operands differ in type: %s and %s", op, tx, ty)
	}
	if err != nil {
		return nil, err
	}

	switch a := x.(type) {
	case int:
		return checked(v, op, a, y.(int))
	case int8:
		return checked(v, op, a, y.(int8))
	case int16:
		return checked(v, op, a, y.(int16))
	case int32:
		return checked(v, op, a, y.(int32))
	case int64:
		return checked(v, op, a, y.(int64))
	case uint:
		return checked(v, op, a, y.(uint))
	case uint8:
		return checked(v, op, a, y.(uint8))
	case uint16:
		return checked(v, op, a, y.(uint16))
	case uint32:
		return checked(v, op, a, y.(uint32))
	case uint64:
		return checked(v, op, a, y.(uint64))
	case float32:
		return floating(op, a, y.(float32)), nil
	case float64:
		return floating(op, a, y.(float64)), nil
	}
	return nil, fmt.Errorf("%s does not support %s", op, tx)
}

func convertLiteral(op arithOp, x any, to reflect.Type) (any, error) {
	i := reflect.ValueOf(x).Int()
	probe := reflect.Zero(to)
	var overflow bool
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		overflow = probe.OverflowInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		overflow = i < 0 || probe.OverflowUint(uint64(i))
	}
	if overflow {
		return nil, fmt.Errorf("%s: %d does not fit in %s", op, i, to)
	}
	return reflect.ValueOf(x).Convert(to).Interface(), nil
}

func checked[T verifier.Integer](v verifier.Verifier, op arithOp, a, b T) (any, error) {
	var r T
	var err error
	switch op {
	case opAdd:
		r, err = verifier.AddChecked(v, a, b)
	case opSub:
		r, err = verifier.SubChecked(v, a, b)
	default:
		r, err = verifier.MulChecked(v, a, b)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func floating[T float32 | float64](op arithOp, a, b T) any {
	switch op {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	}
	return a * b
}
