package verifier

import (
	"math"
	"reflect"
)

// Kind is the numeric kind of an Interval.
type Kind int

const (
	KindUnsigned Kind = iota
	KindSigned
	KindFloat
)

// Interval is the inclusive set of values a strategy accepts from the next
// symbolic region. Lo and Hi are widened to 64 bits: plain values for
// unsigned kinds, int64 bits for signed kinds and float64 bits for floats.
type Interval struct {
	Kind   Kind
	Lo, Hi uint64
}

// Signed returns the bounds of a signed interval.
func (iv Interval) Signed() (lo, hi int64) {
	return int64(iv.Lo), int64(iv.Hi)
}

// Floats returns the bounds of a float interval.
func (iv Interval) Floats() (lo, hi float64) {
	return math.Float64frombits(iv.Lo), math.Float64frombits(iv.Hi)
}

// Hinter is implemented by verifiers that can focus the choice of the next
// symbolic region on the values a strategy will accept.
type Hinter interface {
	Hint(iv Interval)
}

// Hint passes iv to v when v is a Hinter. A hint never constrains the path:
// the caller still has to assume its bounds.
func Hint(v Verifier, iv Interval) {
	if h, ok := v.(Hinter); ok {
		h.Hint(iv)
	}
}

// IntervalOf describes [lo, hi] over T.
func IntervalOf[T Scalar](lo, hi T) Interval {
	switch kindOf[T]() {
	case KindFloat:
		return Interval{Kind: KindFloat, Lo: math.Float64bits(float64(lo)), Hi: math.Float64bits(float64(hi))}
	case KindSigned:
		return Interval{Kind: KindSigned, Lo: uint64(int64(lo)), Hi: uint64(int64(hi))}
	default:
		return Interval{Kind: KindUnsigned, Lo: uint64(lo), Hi: uint64(hi)}
	}
}

// Limits returns the smallest and largest values of T. Floats span the
// infinities.
func Limits[T Scalar]() (lo, hi T) {
	l := reflect.ValueOf(&lo).Elem()
	h := reflect.ValueOf(&hi).Elem()
	bits := uint(8 * l.Type().Size())
	switch kindOf[T]() {
	case KindFloat:
		l.SetFloat(math.Inf(-1))
		h.SetFloat(math.Inf(1))
	case KindSigned:
		l.SetInt(math.MinInt64 >> (64 - bits))
		h.SetInt(math.MaxInt64 >> (64 - bits))
	default:
		h.SetUint(math.MaxUint64 >> (64 - bits))
	}
	return lo, hi
}

// Prev returns the largest value of T below x. x must not be the smallest
// value of T.
func Prev[T Scalar](x T) T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return T(math.Nextafter32(float32(x), float32(math.Inf(-1))))
	case reflect.Float64:
		return T(math.Nextafter(float64(x), math.Inf(-1)))
	}
	return x - 1
}

func kindOf[T Scalar]() Kind {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindSigned
	default:
		return KindUnsigned
	}
}
