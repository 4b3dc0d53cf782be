package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/nomagicln/propverify/internal/testutil"
	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/config"
	"github.com/nomagicln/propverify/pkg/declare"
	"github.com/nomagicln/propverify/pkg/testcase"
)

const smallProperties = `
properties:
  - name: below_four
    bind:
      - name: x
        strategy: {range: {type: u8, start: 0, end: 4}}
    assert: ["x < 4"]

  - name: below_two
    bind:
      - name: x
        strategy: {range: {type: u8, start: 0, end: 4}}
    assert: ["x < 2"]
`

func newTestHandler(t *testing.T) (*Handler, *casestore.Store, *bytes.Buffer) {
	t.Helper()
	store, err := casestore.Open(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	var out bytes.Buffer
	cfg := config.Default()
	cfg.Explore.Jobs = 2
	return NewHandler(cfg, WithStore(store), WithOutput(&out)), store, &out
}

func TestRunReportsUnmetExpectations(t *testing.T) {
	h, store, out := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)

	results, err := h.Run(context.Background(), []string{path}, nil)
	var unmet *ExpectationError
	require.ErrorAs(t, err, &unmet)
	assert.Equal(t, []string{"below_two"}, unmet.Properties)

	require.Len(t, results, 2)
	assert.True(t, results[0].Met)
	assert.Equal(t, 4, results[0].Report.Passed)
	assert.False(t, results[1].Met)

	assert.Contains(t, out.String(), "PASS below_four (expect verified)")
	assert.Contains(t, out.String(), "FAIL below_two (expect verified)")
	assert.Contains(t, out.String(), "failure: assertion failed: x < 2")
	assert.Contains(t, out.String(), "1 of 2 properties met their expectation")

	cases, err := store.List(context.Background(), casestore.Filter{Property: "below_two"})
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, testcase.OutcomeFailed, cases[0].Outcome)
}

func TestRunSelectsNames(t *testing.T) {
	h, _, out := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)

	results, err := h.Run(context.Background(), []string{path}, []string{"below_four"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NotContains(t, out.String(), "below_two")

	_, err = h.Run(context.Background(), []string{path}, []string{"below_for"})
	var notFound *PropertyNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, []string{"below_four", "below_two"}, notFound.Known)
}

func TestRunWithoutStore(t *testing.T) {
	var out bytes.Buffer
	h := NewHandler(nil, WithOutput(&out))
	path := testutil.TempPropertyFile(t, smallProperties)

	results, err := h.Run(context.Background(), []string{path}, []string{"below_two"})
	require.Error(t, err)
	f, ok := results[0].Report.FirstFailure()
	require.True(t, ok)
	assert.Nil(t, f.Case)

	err = h.ListCases(context.Background(), casestore.Filter{}, "table")
	assert.EqualError(t, err, "the case store is disabled")
}

func TestReplayRecordedCase(t *testing.T) {
	h, store, out := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)
	ctx := context.Background()

	_, _ = h.Run(ctx, []string{path}, nil)
	ids, err := store.IDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	out.Reset()
	res, err := h.Replay(ctx, ids[0][:8], []string{path})
	require.NoError(t, err)
	assert.True(t, res.Matches)
	assert.Equal(t, testcase.OutcomeFailed, res.Outcome)
	assert.Contains(t, out.String(), "  Value x = ")
	assert.Contains(t, out.String(), "Verification failed: assertion failed: x < 2")
}

func TestExportAndImportCase(t *testing.T) {
	h, store, _ := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)
	ctx := context.Background()

	_, _ = h.Run(ctx, []string{path}, nil)
	ids, err := store.IDs(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 1)

	var exported bytes.Buffer
	require.NoError(t, h.ExportCase(ctx, ids[0], &exported))
	file := testutil.WriteFile(t, t.TempDir(), "case.yaml", exported.String())

	c, err := ReadCase(file)
	require.NoError(t, err)
	assert.Equal(t, ids[0], c.ID)

	res, err := h.ReplayCase(c, []string{path})
	require.NoError(t, err)
	assert.True(t, res.Matches)

	require.NoError(t, h.DeleteCase(ctx, ids[0]))
	_, err = store.Get(ctx, ids[0])
	var missing *casestore.CaseNotFoundError
	require.ErrorAs(t, err, &missing)

	imported, err := h.ImportCase(ctx, file)
	require.NoError(t, err)
	got, err := store.Get(ctx, imported.ID)
	require.NoError(t, err)
	assert.Equal(t, c.Objects, got.Objects)
}

func TestListCasesFormats(t *testing.T) {
	h, _, out := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)
	ctx := context.Background()
	_, _ = h.Run(ctx, []string{path}, nil)

	t.Run("table", func(t *testing.T) {
		out.Reset()
		require.NoError(t, h.ListCases(ctx, casestore.Filter{}, "table"))
		assert.Contains(t, out.String(), "PROPERTY")
		assert.Contains(t, out.String(), "below_two")
	})

	t.Run("json", func(t *testing.T) {
		out.Reset()
		require.NoError(t, h.ListCases(ctx, casestore.Filter{}, "json"))
		var views []caseView
		require.NoError(t, json.Unmarshal(out.Bytes(), &views))
		require.Len(t, views, 1)
		assert.Equal(t, "below_two", views[0].Property)
		assert.Equal(t, "failed", views[0].Outcome)
		require.Len(t, views[0].Objects, 1)
		assert.Equal(t, "range", views[0].Objects[0].Name)
		assert.Len(t, views[0].Objects[0].Bytes, 2)
	})

	t.Run("yaml", func(t *testing.T) {
		out.Reset()
		require.NoError(t, h.ListCases(ctx, casestore.Filter{Property: "below_four"}, "yaml"))
		var views []caseView
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &views))
		assert.Empty(t, views)
	})

	t.Run("unknown", func(t *testing.T) {
		err := h.ListCases(ctx, casestore.Filter{}, "xml")
		assert.ErrorContains(t, err, `unknown output format "xml"`)
	})
}

func TestDeleteProperty(t *testing.T) {
	h, _, _ := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)
	ctx := context.Background()
	_, _ = h.Run(ctx, []string{path}, nil)

	n, err := h.DeleteProperty(ctx, "below_two")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = h.DeleteProperty(ctx, "below_two")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestList(t *testing.T) {
	h, _, out := newTestHandler(t)
	path := testutil.TempPropertyFile(t, smallProperties)

	require.NoError(t, h.List([]string{path}, "table"))
	assert.Contains(t, out.String(), "NAME")
	assert.Contains(t, out.String(), "below_four")
	assert.Contains(t, out.String(), path)

	out.Reset()
	require.NoError(t, h.List([]string{path}, "json"))
	var listings []Listing
	require.NoError(t, json.Unmarshal(out.Bytes(), &listings))
	assert.Equal(t, []Listing{
		{Name: "below_four", Expect: "verified", Source: path},
		{Name: "below_two", Expect: "verified", Source: path},
	}, listings)
}

// syncBuffer lets the test read output written by the watch loop.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchRerunsOnChange(t *testing.T) {
	var out syncBuffer
	h := NewHandler(nil, WithOutput(&out))
	path := testutil.TempPropertyFile(t, smallProperties)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- h.Watch(ctx, []string{path}, []string{"below_four"},
			declare.WithPollInterval(20*time.Millisecond), declare.WithSettleDelay(20*time.Millisecond))
	}()

	summary := "1 of 1 properties met their expectation"
	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), summary) == 1
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(smallProperties+"\n# edited\n"), 0644))
	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), summary) >= 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), path+" changed at")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchMissingPath(t *testing.T) {
	h := NewHandler(nil, WithOutput(&bytes.Buffer{}))
	err := h.Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope.yaml")}, nil)
	assert.Error(t, err)
}
