package explore

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/nomagicln/propverify/pkg/verifier"
)

// DefaultWindow is the number of neighbors taken around each boundary of a
// region wider than one byte.
const DefaultWindow = 16

// DefaultEnumerateLimit is the size of the largest hinted interval whose
// every value is tried.
const DefaultEnumerateLimit = 4096

// choices are the candidate patterns of one region. A dense list stands for
// lo, lo+1, ... without storing them. complete is set when the candidates
// cover every value the region can usefully take.
type choices struct {
	values   []uint64
	dense    bool
	lo       uint64
	n        int
	complete bool
}

func (c choices) len() int {
	if c.dense {
		return c.n
	}
	return len(c.values)
}

// put writes candidate i into buf, little-endian, sign-extending past eight
// bytes.
func (c choices) put(buf []byte, i int) {
	x := c.lo + uint64(i)
	if !c.dense {
		x = c.values[i]
	}
	var le [8]byte
	binary.LittleEndian.PutUint64(le[:], x)
	copy(buf, le[:])
	if len(buf) > 8 && x>>63 == 1 {
		for j := 8; j < len(buf); j++ {
			buf[j] = 0xff
		}
	}
}

type hintKey struct {
	width int
	iv    verifier.Interval
}

// domain lists the candidate bit patterns tried for a region of each width.
// One-byte regions are enumerated exhaustively. Wider regions get a menu of
// boundary values and their neighbors, or, when a strategy hinted the
// interval it accepts, the values of that interval.
type domain struct {
	window int
	limit  int
	extra  []uint64
	cached [9]choices

	mu     sync.Mutex
	hinted map[hintKey]choices
}

func newDomain(window, limit int, extra []uint64) *domain {
	if limit <= 0 {
		limit = DefaultEnumerateLimit
	}
	d := &domain{window: max(window, 0), limit: limit, extra: extra, hinted: make(map[hintKey]choices)}
	for w := range d.cached {
		d.cached[w] = d.build(w)
	}
	return d
}

// candidates returns the patterns for a region of the given width, focused
// on iv when it is not nil. The result is shared and must not be modified.
func (d *domain) candidates(width int, iv *verifier.Interval) choices {
	if iv == nil || width <= 1 {
		if width < len(d.cached) {
			return d.cached[width]
		}
		return d.build(width)
	}

	key := hintKey{width: width, iv: *iv}
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.hinted[key]; ok {
		return c
	}
	var c choices
	if iv.Kind == verifier.KindFloat {
		c = d.focusFloat(width, *iv)
	} else {
		c = d.focus(width, *iv)
	}
	if c.len() == 0 {
		c = d.build(width)
	}
	d.hinted[key] = c
	return c
}

func (d *domain) build(width int) choices {
	switch width {
	case 0:
		return choices{dense: true, n: 1, complete: true}
	case 1:
		return choices{dense: true, n: 256, complete: true}
	}
	return choices{values: d.menu(width)}
}

func mask(width int) uint64 {
	if width >= 8 {
		return math.MaxUint64
	}
	return 1<<(8*width) - 1
}

// menu returns the general candidates of a wide region, masked to its width.
func (d *domain) menu(width int) []uint64 {
	m := mask(width)
	smax := m >> 1
	smin := smax + 1
	half := smax / 2
	w := uint64(d.window)

	seen := make(map[uint64]bool)
	var values []uint64
	add := func(x uint64) {
		x &= m
		if !seen[x] {
			seen[x] = true
			values = append(values, x)
		}
	}

	add(0)
	for k := uint64(1); k <= w; k++ {
		add(k)
		add(-k)
	}
	for k := uint64(0); k <= w; k++ {
		add(smax - k)
		add(smin + k)
	}
	for _, x := range []uint64{half - 1, half, half + 1, half + 2} {
		add(x)
		add(-x)
	}

	switch width {
	case 4:
		for k := -int(w); k <= int(w); k++ {
			add(uint64(math.Float32bits(float32(k))))
		}
		for _, f := range []float32{0.5, -0.5, math.MaxFloat32, -math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN())} {
			add(uint64(math.Float32bits(f)))
		}
	case 8:
		for k := -int(w); k <= int(w); k++ {
			add(math.Float64bits(float64(k)))
		}
		for _, f := range []float64{0.5, -0.5, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), math.NaN()} {
			add(math.Float64bits(f))
		}
	}

	for _, x := range d.extra {
		add(x)
	}
	return values
}

// focus lists the candidates of an integer region whose values must lie in
// iv. Intervals of at most limit values are enumerated. Larger ones get the
// window at both bounds, the midpoint and the part of the menu that falls
// inside.
func (d *domain) focus(width int, iv verifier.Interval) choices {
	m := mask(width)
	// Values are handled as offsets from Lo, which keeps the arithmetic the
	// same for both signed and unsigned kinds.
	span := iv.Hi - iv.Lo
	if span < uint64(d.limit) {
		return choices{dense: true, lo: iv.Lo, n: int(span) + 1, complete: true}
	}

	shift := uint(64 - 8*min(width, 8))
	widen := func(x uint64) uint64 {
		if iv.Kind == verifier.KindSigned {
			return uint64(int64(x<<shift) >> shift)
		}
		return x
	}

	seen := make(map[uint64]bool)
	var values []uint64
	add := func(off uint64) {
		if off > span {
			return
		}
		x := (iv.Lo + off) & m
		if !seen[x] {
			seen[x] = true
			values = append(values, x)
		}
	}

	w := uint64(d.window)
	for k := uint64(0); k <= w; k++ {
		add(k)
		add(span - k)
	}
	for _, off := range []uint64{span/2 - 1, span / 2, span/2 + 1} {
		add(off)
	}
	for _, x := range d.menu(width) {
		add(widen(x) - iv.Lo)
	}
	return choices{values: values}
}

// focusFloat lists the candidates of a float region whose values must lie in
// iv: both bounds and their neighbors, the midpoint, integral values near
// zero and near the bounds, and the float part of the menu that falls inside.
func (d *domain) focusFloat(width int, iv verifier.Interval) choices {
	lo, hi := iv.Floats()
	toward := func(f, dir float64) float64 {
		if width == 4 {
			return float64(math.Nextafter32(float32(f), float32(dir)))
		}
		return math.Nextafter(f, dir)
	}

	seen := make(map[uint64]bool)
	var values []uint64
	add := func(f float64) {
		if !(lo <= f && f <= hi) {
			return
		}
		x := math.Float64bits(f)
		if width == 4 {
			x = uint64(math.Float32bits(float32(f)))
		}
		if !seen[x] {
			seen[x] = true
			values = append(values, x)
		}
	}

	add(lo)
	add(toward(lo, math.Inf(1)))
	add(hi)
	add(toward(hi, math.Inf(-1)))
	add(lo/2 + hi/2)
	for k := 0; k <= d.window; k++ {
		add(float64(k))
		add(-float64(k))
		add(math.Ceil(lo) + float64(k))
		add(math.Floor(hi) - float64(k))
	}
	for _, x := range d.menu(width) {
		if width == 4 {
			add(float64(math.Float32frombits(uint32(x))))
		} else {
			add(math.Float64frombits(x))
		}
	}
	return choices{values: values, complete: lo == hi && lo != 0}
}
