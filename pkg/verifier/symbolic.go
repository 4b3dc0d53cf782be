package verifier

import (
	"encoding/binary"
	"math"
	"reflect"
	"unicode/utf8"
)

// Integer is any fixed-width integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is any floating point kind.
type Float interface {
	~float32 | ~float64
}

// Scalar is a kind where every bit pattern of its width is a legal value.
type Scalar interface {
	Integer | Float
}

// Symbolic returns a value of T whose bit pattern is chosen by the engine.
func Symbolic[T Scalar](v Verifier, name string) (T, error) {
	var r T
	rv := reflect.ValueOf(&r).Elem()
	size := int(rv.Type().Size())

	buf := make([]byte, size)
	if err := v.MakeSymbolic(buf, name); err != nil {
		return r, err
	}

	var wide [8]byte
	copy(wide[:], buf)
	bits := binary.LittleEndian.Uint64(wide[:])

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		shift := uint(64 - 8*size)
		rv.SetInt(int64(bits<<shift) >> shift)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(bits)
	case reflect.Float32:
		rv.SetFloat(float64(math.Float32frombits(uint32(bits))))
	case reflect.Float64:
		rv.SetFloat(math.Float64frombits(bits))
	}
	return r, nil
}

// Bool draws a byte and keeps only the paths where it is 0 or 1.
func Bool(v Verifier, name string) (bool, error) {
	c, err := Symbolic[uint8](v, name)
	if err != nil {
		return false, err
	}
	if err := v.Assume(c == 0 || c == 1); err != nil {
		return false, err
	}
	return c == 1, nil
}

// Char draws a 32-bit value and rejects the path unless it is a valid code point.
func Char(v Verifier, name string) (rune, error) {
	c, err := Symbolic[uint32](v, name)
	if err != nil {
		return 0, err
	}
	if c > math.MaxInt32 || !utf8.ValidRune(rune(c)) {
		return 0, v.Reject()
	}
	return rune(c), nil
}
