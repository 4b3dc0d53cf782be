package proptest

import (
	"math"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Bounds is an interval of int8 values with Lo <= Hi.
type Bounds struct {
	Lo int8
	Hi int8
}

// Int8Bounds generates ordered int8 bounds.
func Int8Bounds() gopter.Gen {
	return gopter.CombineGens(
		gen.Int8Range(math.MinInt8, math.MaxInt8),
		gen.Int8Range(math.MinInt8, math.MaxInt8),
	).Map(func(v []interface{}) Bounds {
		a, b := v[0].(int8), v[1].(int8)
		if a > b {
			a, b = b, a
		}
		return Bounds{Lo: a, Hi: b}
	})
}

// Uint8Bounds generates ordered uint8 bounds as a [lo, hi] pair.
func Uint8Bounds() gopter.Gen {
	return gopter.CombineGens(
		gen.UInt8Range(0, math.MaxUint8),
		gen.UInt8Range(0, math.MaxUint8),
	).Map(func(v []interface{}) [2]uint8 {
		a, b := v[0].(uint8), v[1].(uint8)
		if a > b {
			a, b = b, a
		}
		return [2]uint8{a, b}
	})
}

// WideInt32Bounds generates half-open int32 intervals [lo, hi) of at most
// 300 values, placed away from zero and from the limits of int32.
func WideInt32Bounds() gopter.Gen {
	return gopter.CombineGens(
		gen.Int32Range(1<<20, 1<<30),
		gen.Int32Range(0, 300),
		gen.Bool(),
	).Map(func(v []interface{}) [2]int32 {
		lo, size := v[0].(int32), v[1].(int32)
		if v[2].(bool) {
			lo = -lo - size
		}
		return [2]int32{lo, lo + size}
	})
}

// PropertyName generates valid property names.
func PropertyName() gopter.Gen {
	return gen.Identifier()
}
