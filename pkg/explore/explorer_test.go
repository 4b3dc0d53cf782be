package explore

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomagicln/propverify/pkg/testcase"
	"github.com/nomagicln/propverify/pkg/verifier"
)

type memorySink struct {
	mu    sync.Mutex
	cases []*testcase.Case
	err   error
}

func (s *memorySink) SaveCase(_ context.Context, c *testcase.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cases = append(s.cases, c)
	return s.err
}

func TestExploreByteIsExhaustive(t *testing.T) {
	seen := make(map[uint8]bool)
	p := Func("u8", func(v verifier.Verifier) error {
		x, err := verifier.Symbolic[uint8](v, "x")
		if err != nil {
			return err
		}
		seen[x] = true
		return nil
	})

	rep, err := New().Explore(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, rep.Exhausted)
	assert.Equal(t, StopExhausted, rep.Stop)
	assert.Equal(t, 256, rep.Runs)
	assert.Equal(t, 256, rep.Passed)
	assert.Len(t, seen, 256)
}

func TestExploreWideRegionBoundaries(t *testing.T) {
	seen := make(map[int32]bool)
	p := Func("i32", func(v verifier.Verifier) error {
		x, err := verifier.Symbolic[int32](v, "x")
		if err != nil {
			return err
		}
		seen[x] = true
		return nil
	})

	_, err := New(WithWindow(4)).Explore(context.Background(), p)
	require.NoError(t, err)

	for _, want := range []int32{0, 1, 4, -1, -4, math.MaxInt32, math.MaxInt32 - 4, math.MinInt32, math.MinInt32 + 4, math.MinInt32 / 2, math.MaxInt32 / 2} {
		assert.True(t, seen[want], "missing %d", want)
	}
	assert.False(t, seen[5])
}

func TestExploreHintedRegions(t *testing.T) {
	hinted := func(iv verifier.Interval, seen map[int64]bool) Program {
		return Func("hinted", func(v verifier.Verifier) error {
			verifier.Hint(v, iv)
			x, err := verifier.Symbolic[int64](v, "x")
			if err != nil {
				return err
			}
			seen[x] = true
			return nil
		})
	}

	t.Run("small interval is enumerated", func(t *testing.T) {
		seen := make(map[int64]bool)
		rep, err := New().Explore(context.Background(), hinted(verifier.IntervalOf[int64](-3, 6), seen))
		require.NoError(t, err)
		assert.Equal(t, 10, rep.Runs)
		assert.Len(t, seen, 10)
		for x := int64(-3); x <= 6; x++ {
			assert.True(t, seen[x], "missing %d", x)
		}
		assert.True(t, rep.Exhausted)
		assert.False(t, rep.Sampled)
		assert.Equal(t, StopExhausted, rep.Stop)
	})

	t.Run("large interval is sampled at both ends", func(t *testing.T) {
		const lo, hi = -1 << 40, 1 << 50
		seen := make(map[int64]bool)
		rep, err := New(WithWindow(4)).Explore(context.Background(), hinted(verifier.IntervalOf[int64](lo, hi), seen))
		require.NoError(t, err)
		for x := range seen {
			assert.True(t, lo <= x && x <= hi, "out of range: %d", x)
		}
		for _, want := range []int64{lo, lo + 4, hi, hi - 4, 0, -1, 4} {
			assert.True(t, seen[want], "missing %d", want)
		}
		assert.False(t, seen[lo+5])
		assert.False(t, rep.Exhausted)
		assert.True(t, rep.Sampled)
		assert.Equal(t, StopSampled, rep.Stop)
		assert.Equal(t, rep.Runs, rep.Passed)
	})

	t.Run("enumerate limit", func(t *testing.T) {
		seen := make(map[int64]bool)
		rep, err := New(WithEnumerateLimit(8), WithWindow(1)).Explore(context.Background(), hinted(verifier.IntervalOf[int64](100, 109), seen))
		require.NoError(t, err)
		assert.Less(t, len(seen), 10)
		assert.True(t, seen[100])
		assert.True(t, seen[109])
		assert.Equal(t, StopSampled, rep.Stop)
	})

	t.Run("one-byte regions ignore hints", func(t *testing.T) {
		p := Func("u8", func(v verifier.Verifier) error {
			verifier.Hint(v, verifier.IntervalOf[uint8](3, 4))
			_, err := verifier.Symbolic[uint8](v, "x")
			return err
		})
		rep, err := New().Explore(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, 256, rep.Runs)
		assert.True(t, rep.Exhausted)
	})

	t.Run("unsigned interval", func(t *testing.T) {
		var got []uint32
		p := Func("u32", func(v verifier.Verifier) error {
			verifier.Hint(v, verifier.IntervalOf[uint32](10, 19))
			x, err := verifier.Symbolic[uint32](v, "x")
			if err != nil {
				return err
			}
			got = append(got, x)
			return nil
		})
		rep, err := New().Explore(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, []uint32{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, got)
		assert.True(t, rep.Exhausted)
	})

	t.Run("float interval", func(t *testing.T) {
		var got []float32
		p := Func("f32", func(v verifier.Verifier) error {
			verifier.Hint(v, verifier.IntervalOf[float32](-1, 1))
			x, err := verifier.Symbolic[float32](v, "x")
			if err != nil {
				return err
			}
			got = append(got, x)
			return nil
		})
		rep, err := New().Explore(context.Background(), p)
		require.NoError(t, err)
		for _, x := range got {
			assert.True(t, -1 <= x && x <= 1, "out of range: %v", x)
		}
		assert.Contains(t, got, float32(-1))
		assert.Contains(t, got, float32(1))
		assert.Contains(t, got, float32(0))
		assert.Contains(t, got, math.Nextafter32(1, 0))
		assert.Equal(t, StopSampled, rep.Stop)
	})
}

func TestExploreFloatPatterns(t *testing.T) {
	var sawNaN, sawInf, sawHalf bool
	p := Func("f64", func(v verifier.Verifier) error {
		x, err := verifier.Symbolic[float64](v, "x")
		if err != nil {
			return err
		}
		sawNaN = sawNaN || math.IsNaN(x)
		sawInf = sawInf || math.IsInf(x, -1)
		sawHalf = sawHalf || x == 0.5
		return nil
	})

	_, err := New().Explore(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, sawNaN)
	assert.True(t, sawInf)
	assert.True(t, sawHalf)
}

func TestExploreExtraValues(t *testing.T) {
	found := false
	p := Func("u16", func(v verifier.Verifier) error {
		x, err := verifier.Symbolic[uint16](v, "x")
		if err != nil {
			return err
		}
		found = found || x == 1234
		return nil
	})

	_, err := New(WithExtraValues(1234)).Explore(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestExploreCountsOutcomes(t *testing.T) {
	p := Func("mixed", func(v verifier.Verifier) error {
		x, err := verifier.Symbolic[uint8](v, "x")
		if err != nil {
			return err
		}
		if err := v.Assume(x < 10); err != nil {
			return err
		}
		return verifier.Verify(v, x != 7)
	})

	rep, err := New(WithStopOnFailure(false)).Explore(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 256, rep.Runs)
	assert.Equal(t, 9, rep.Passed)
	assert.Equal(t, 246, rep.Pruned)
	assert.Equal(t, 1, rep.Failed)
	assert.False(t, rep.Verified())

	f, ok := rep.FirstFailure()
	require.True(t, ok)
	assert.Equal(t, "verification failed", f.Message)
	require.Len(t, f.Case.Objects, 1)
	assert.Equal(t, testcase.HexBytes{7}, f.Case.Objects[0].Bytes)
}

func TestExploreStopsOnFailure(t *testing.T) {
	sink := &memorySink{}
	p := Func("fails", func(v verifier.Verifier) error {
		x, err := verifier.Symbolic[uint8](v, "x")
		if err != nil {
			return err
		}
		return verifier.Verify(v, x < 3)
	})

	rep, err := New(WithCaseSink(sink)).Explore(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, StopFailure, rep.Stop)
	assert.Equal(t, 4, rep.Runs)
	assert.False(t, rep.Exhausted)
	require.Len(t, sink.cases, 1)
	assert.Equal(t, "fails", sink.cases[0].Property)
}

func TestExploreSinkErrorsDoNotStopExploration(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	p := Func("fails", func(v verifier.Verifier) error {
		return v.ReportError("always")
	})

	rep, err := New(WithCaseSink(sink)).Explore(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failed)
}

func TestExploreNestedChoices(t *testing.T) {
	pairs := make(map[[2]bool]int)
	p := Func("pairs", func(v verifier.Verifier) error {
		a, err := verifier.Bool(v, "a")
		if err != nil {
			return err
		}
		b, err := verifier.Bool(v, "b")
		if err != nil {
			return err
		}
		pairs[[2]bool{a, b}]++
		return nil
	})

	rep, err := New().Explore(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, rep.Exhausted)
	assert.Equal(t, 4, rep.Passed)
	assert.Len(t, pairs, 4)
	for _, n := range pairs {
		assert.Equal(t, 1, n)
	}
}

func TestExploreBudgets(t *testing.T) {
	p := Func("wide", func(v verifier.Verifier) error {
		for range 4 {
			if _, err := verifier.Symbolic[uint8](v, "x"); err != nil {
				return err
			}
		}
		return nil
	})

	t.Run("max runs", func(t *testing.T) {
		rep, err := New(WithMaxRuns(10)).Explore(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, 10, rep.Runs)
		assert.Equal(t, StopMaxRuns, rep.Stop)
		assert.False(t, rep.Exhausted)
	})

	t.Run("max depth", func(t *testing.T) {
		rep, err := New(WithMaxDepth(2), WithMaxRuns(10)).Explore(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, 10, rep.Pruned)
		assert.True(t, rep.Vacuous())
	})

	t.Run("timeout", func(t *testing.T) {
		rep, err := New(WithMaxRuns(0), WithTimeout(time.Millisecond)).Explore(context.Background(), p)
		require.NoError(t, err)
		assert.Equal(t, StopTimeout, rep.Stop)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		rep, err := New().Explore(ctx, p)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StopCanceled, rep.Stop)
		assert.Zero(t, rep.Runs)
	})
}

func TestExploreRecoversPanics(t *testing.T) {
	p := Func("panics", func(v verifier.Verifier) error {
		panic("boom")
	})

	rep, err := New().Explore(context.Background(), p)
	require.NoError(t, err)
	f, ok := rep.FirstFailure()
	require.True(t, ok)
	assert.Equal(t, "panic: boom", f.Message)
}

func TestExploreDetectsNondeterminism(t *testing.T) {
	calls := 0
	p := Func("flaky", func(v verifier.Verifier) error {
		calls++
		if calls == 1 {
			_, err := verifier.Symbolic[uint8](v, "x")
			return err
		}
		_, err := verifier.Symbolic[uint16](v, "x")
		return err
	})

	rep, err := New().Explore(context.Background(), p)
	var nd *NondeterminismError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, "flaky", nd.Property)
	assert.Equal(t, StopDiverged, rep.Stop)
}

func TestExploreDetectsChangedIntervals(t *testing.T) {
	calls := 0
	p := Func("shifting", func(v verifier.Verifier) error {
		calls++
		if calls == 1 {
			verifier.Hint(v, verifier.IntervalOf[uint16](0, 9))
		} else {
			verifier.Hint(v, verifier.IntervalOf[uint16](0, 2))
		}
		_, err := verifier.Symbolic[uint16](v, "x")
		return err
	})

	rep, err := New().Explore(context.Background(), p)
	var nd *NondeterminismError
	require.ErrorAs(t, err, &nd)
	assert.Contains(t, nd.Error(), "different interval")
	assert.Equal(t, StopDiverged, rep.Stop)
}

func TestExploreAll(t *testing.T) {
	pass := Func("pass", func(v verifier.Verifier) error {
		_, err := verifier.Bool(v, "b")
		return err
	})
	fail := Func("fail", func(v verifier.Verifier) error {
		return v.ReportError("nope")
	})

	reports, err := New(WithJobs(2)).ExploreAll(context.Background(), pass, fail, pass)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "pass", reports[0].Property)
	assert.True(t, reports[0].Verified())
	assert.False(t, reports[1].Verified())
	assert.Equal(t, 2, reports[2].Passed)
}

func TestReportString(t *testing.T) {
	rep := &Report{Property: "p", Runs: 3, Passed: 0, Pruned: 3, Stop: StopExhausted}
	assert.Contains(t, rep.String(), "p: vacuous")

	rep.Failed = 1
	assert.Contains(t, rep.String(), "p: FAILED")
}
