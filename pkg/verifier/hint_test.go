package verifier

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type hintingSource struct {
	bytesSource
	hints []Interval
}

func (s *hintingSource) Hint(iv Interval) { s.hints = append(s.hints, iv) }

func TestIntervalOf(t *testing.T) {
	tests := []struct {
		name string
		got  Interval
		want Interval
	}{
		{"unsigned", IntervalOf[uint16](10, 20), Interval{Kind: KindUnsigned, Lo: 10, Hi: 20}},
		{"signed", IntervalOf[int8](-2, 3), Interval{Kind: KindSigned, Lo: math.MaxUint64 - 1, Hi: 3}},
		{"float", IntervalOf[float32](-1, 0.5), Interval{Kind: KindFloat, Lo: math.Float64bits(-1), Hi: math.Float64bits(0.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}

	lo, hi := IntervalOf[int64](math.MinInt64, -7).Signed()
	assert.Equal(t, int64(math.MinInt64), lo)
	assert.Equal(t, int64(-7), hi)
	flo, fhi := IntervalOf(-2.5, 2.5).Floats()
	assert.Equal(t, -2.5, flo)
	assert.Equal(t, 2.5, fhi)
}

func TestLimits(t *testing.T) {
	lo8, hi8 := Limits[int8]()
	assert.Equal(t, int8(math.MinInt8), lo8)
	assert.Equal(t, int8(math.MaxInt8), hi8)

	lo32, hi32 := Limits[uint32]()
	assert.Zero(t, lo32)
	assert.Equal(t, uint32(math.MaxUint32), hi32)

	lo64, hi64 := Limits[int64]()
	assert.Equal(t, int64(math.MinInt64), lo64)
	assert.Equal(t, int64(math.MaxInt64), hi64)

	flo, fhi := Limits[float32]()
	assert.True(t, math.IsInf(float64(flo), -1))
	assert.True(t, math.IsInf(float64(fhi), 1))
}

func TestPrev(t *testing.T) {
	assert.Equal(t, uint16(9), Prev[uint16](10))
	assert.Equal(t, int32(math.MinInt32), Prev[int32](math.MinInt32+1))
	assert.Equal(t, math.Nextafter(1, 0), Prev(1.0))
	assert.Equal(t, math.Nextafter32(1, 0), Prev[float32](1))
}

func TestPathForwardsHints(t *testing.T) {
	src := &hintingSource{bytesSource: bytesSource{data: []byte{1, 0}}}
	p := NewPath(src)
	Hint(p, IntervalOf[uint16](1, 5))
	_, err := Symbolic[uint16](p, "x")
	assert.NoError(t, err)
	assert.Equal(t, []Interval{{Kind: KindUnsigned, Lo: 1, Hi: 5}}, src.hints)

	_ = p.Reject()
	Hint(p, IntervalOf[uint16](1, 2))
	assert.Len(t, src.hints, 1, "a finished path drops hints")

	// Sources without hint support are left alone.
	plain := newPath(0)
	Hint(plain, IntervalOf[uint8](0, 0))
	_, err = Symbolic[uint8](plain, "y")
	assert.NoError(t, err)
}
