// Package integration provides end-to-end integration tests for propverify.
package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomagicln/propverify/internal/testutil"
	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/collection"
	"github.com/nomagicln/propverify/pkg/declare"
	"github.com/nomagicln/propverify/pkg/explore"
	"github.com/nomagicln/propverify/pkg/prop"
	"github.com/nomagicln/propverify/pkg/replay"
	"github.com/nomagicln/propverify/pkg/strategy"
	"github.com/nomagicln/propverify/pkg/testcase"
)

// testEnv provides a store and an explorer recording into it.
type testEnv struct {
	t        *testing.T
	store    *casestore.Store
	explorer *explore.Explorer
}

func newTestEnv(t *testing.T, opts ...explore.Option) *testEnv {
	t.Helper()

	store, err := casestore.Open(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	opts = append([]explore.Option{explore.WithCaseSink(store)}, opts...)
	return &testEnv{t: t, store: store, explorer: explore.New(opts...)}
}

// onlyCase returns the single case recorded for property.
func (e *testEnv) onlyCase(property string) *testcase.Case {
	e.t.Helper()
	cases, err := e.store.List(context.Background(), casestore.Filter{Property: property})
	require.NoError(e.t, err)
	require.Len(e.t, cases, 1)
	return cases[0]
}

const collectionProperties = `
properties:
  - name: heap_pops_descending
    bind:
      - name: h
        strategy:
          binary_heap: {size: 2, key: {range: {type: u8, start: 0, end: 3}}}
    assert:
      - "Len(h) <= 2"
      - "First(h) == Max(h)"

  - name: map_keys_sorted
    bind:
      - name: m
        strategy:
          btree_map:
            size: 2
            key: {range: {type: u8, start: 0, end: 3}}
            value: bool
    assert:
      - "Sorted(Keys(m))"
      - "Len(Keys(m)) == Len(Values(m))"

  - name: option_unwraps
    bind:
      - name: o
        strategy:
          option: {range: {type: u8, start: 1, end: 3}}
    assume: ["IsSome(o)"]
    assert: ["Unwrap(o) > 0"]

  - name: set_has_no_three
    expect: failed
    bind:
      - name: s
        strategy:
          btree_set: {size: 2, key: {range: {type: u8, start: 0, end: 4}}}
    assert: ["!Contains(s, 3)"]
`

func TestDeclaredCollectionsEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	props, err := declare.Load(testutil.TempPropertyFile(t, collectionProperties))
	require.NoError(t, err)

	programs := make([]explore.Program, len(props))
	for i, p := range props {
		programs[i] = p
	}
	reports, err := env.explorer.ExploreAll(context.Background(), programs...)
	require.NoError(t, err)

	for i, p := range props {
		assert.True(t, p.Expect.Met(reports[i]), "%s: %s", p.Name(), reports[i])
	}

	c := env.onlyCase("set_has_no_three")
	var out bytes.Buffer
	res := replay.Run(props[3].Property, c, &out)
	assert.True(t, res.Matches)
	assert.Contains(t, out.String(), "  Value s = ")
	assert.Contains(t, out.String(), "3")
	assert.Contains(t, out.String(), "Verification failed: assertion failed: !Contains(s, 3)")
}

func TestGoPropertyExportImportReplay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p := prop.New("deque_front_is_last_draw", func(g *prop.Gen) prop.Body {
		d := prop.Draw(g, "d", collection.VecDeque(3, strategy.Range[uint8](0, 3)))
		pair := prop.Draw(g, "pair", strategy.Tuple2(strategy.Bool(), strategy.Range[uint16](0, 2)))
		return func(t *prop.T) {
			front, ok := d.Front()
			t.Assert(ok)
			t.Assertf(front != 2 || !pair.V0, "front %d with flag set", front)
		}
	})

	rep, err := env.explorer.Explore(ctx, p)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Failed, rep.String())
	assert.Equal(t, explore.StopFailure, rep.Stop)

	stored := env.onlyCase(p.Name())
	data, err := testcase.Export(stored)
	require.NoError(t, err)

	_, err = env.store.DeleteProperty(ctx, p.Name())
	require.NoError(t, err)
	imported, err := testcase.Import(data)
	require.NoError(t, err)
	require.NoError(t, env.store.SaveCase(ctx, imported))

	got, err := env.store.Get(ctx, imported.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, stored.Objects, got.Objects)

	var out bytes.Buffer
	res := replay.Run(p, got, &out)
	assert.True(t, res.Matches)
	assert.Equal(t, "front 2 with flag set", res.Message)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "  Value d = "))
	assert.True(t, strings.HasPrefix(lines[1], "  Value pair = "))
	assert.Equal(t, "Verification failed: front 2 with flag set", lines[2])
}

func TestKeepGoingRecordsEveryFailure(t *testing.T) {
	env := newTestEnv(t, explore.WithStopOnFailure(false))
	ctx := context.Background()

	p := prop.New("product_fits", func(g *prop.Gen) prop.Body {
		a := prop.Draw(g, "a", strategy.Any[int8]())
		return func(t *prop.T) {
			_ = prop.Mul(t, a, 2)
		}
	})

	rep, err := env.explorer.Explore(ctx, p)
	require.NoError(t, err)
	assert.True(t, rep.Exhausted)
	assert.Equal(t, 256, rep.Runs)
	// 2a overflows int8 for a < -64 and a > 63.
	assert.Equal(t, 128, rep.Failed)
	assert.Equal(t, 128, rep.Passed)

	ids, err := env.store.IDs(ctx)
	require.NoError(t, err)
	assert.Len(t, ids, 128)

	cases, err := env.store.List(ctx, casestore.Filter{Property: p.Name(), Limit: 5})
	require.NoError(t, err)
	require.Len(t, cases, 5)
	for _, c := range cases {
		assert.Equal(t, "attempt to multiply with overflow", c.Message)
		res := replay.Run(p, c, nil)
		assert.True(t, res.Matches)
	}
}

func TestReplayOfWrongPropertyPrunes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	narrow := prop.New("narrow", func(g *prop.Gen) prop.Body {
		x := prop.Draw(g, "x", strategy.Any[uint8]())
		return func(t *prop.T) { t.Assert(x < 200) }
	})
	wide := prop.New("wide", func(g *prop.Gen) prop.Body {
		x := prop.Draw(g, "x", strategy.Any[uint32]())
		return func(t *prop.T) { t.Assert(x < 200) }
	})

	_, err := env.explorer.Explore(ctx, narrow)
	require.NoError(t, err)
	c := env.onlyCase("narrow")

	res := replay.Run(wide, c, nil)
	assert.False(t, res.Matches)
	assert.Equal(t, testcase.OutcomePruned, res.Outcome)
}

func TestWatcherSeesPropertyEdits(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "props.yaml", collectionProperties)

	files, err := declare.Expand(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	w := declare.NewWatcher(files)
	require.Len(t, w.CheckNow(), 1, "the first check records the baseline")
	require.Empty(t, w.CheckNow())

	testutil.WriteFile(t, dir, "props.yaml", strings.Replace(collectionProperties, "end: 4", "end: 3", 1))
	events := w.CheckNow()
	require.Len(t, events, 1)
	assert.Equal(t, declare.ChangeModified, events[0].Type)

	props, err := declare.Load(path)
	require.NoError(t, err)
	i := slices.IndexFunc(props, func(d *declare.Declared) bool { return d.Name() == "set_has_no_three" })
	require.GreaterOrEqual(t, i, 0)

	rep, err := explore.New().Explore(context.Background(), props[i])
	require.NoError(t, err)
	assert.False(t, props[i].Expect.Met(rep), "no key can be 3 once the range ends at 3")
}
