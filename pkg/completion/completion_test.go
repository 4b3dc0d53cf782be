package completion

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomagicln/propverify/internal/testutil"
	"github.com/nomagicln/propverify/pkg/casestore"
	"github.com/nomagicln/propverify/pkg/testcase"
)

func setupStore(t *testing.T) *casestore.Store {
	t.Helper()
	store, err := casestore.Open(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	for _, c := range []struct{ id, property string }{
		{"aa11", "vec_below_five"},
		{"aa22", "vec_below_five"},
		{"bb33", "add_overflows"},
	} {
		require.NoError(t, store.SaveCase(ctx, &testcase.Case{
			ID:        c.id,
			Property:  c.property,
			Outcome:   testcase.OutcomeFailed,
			CreatedAt: time.Now(),
			Objects:   []testcase.Object{{Name: "any", Bytes: testcase.HexBytes{1}}},
		}))
	}
	return store
}

func TestCompletePropertyNames(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "sample.yaml", testutil.SampleProperties)
	provider := NewProvider(nil)

	tests := []struct {
		name     string
		paths    []string
		prefix   string
		expected []string
	}{
		{"all", []string{dir}, "", []string{"add_overflows", "vec_below_five", "vec_in_range"}},
		{"prefix", []string{dir}, "vec_", []string{"vec_below_five", "vec_in_range"}},
		{"no match", []string{dir}, "zzz", []string{}},
		{"missing path", []string{filepath.Join(dir, "missing.yaml")}, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, provider.CompletePropertyNames(tt.paths, tt.prefix))
		})
	}
}

func TestCompletePropertyNamesCachesByPath(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "sample.yaml", testutil.SampleProperties)
	provider := NewProvider(nil)

	require.Len(t, provider.CompletePropertyNames([]string{path}, ""), 3)

	testutil.WriteFile(t, dir, "sample.yaml", "properties: []\n")
	assert.Len(t, provider.CompletePropertyNames([]string{path}, ""), 3)
}

func TestCompleteCaseIDs(t *testing.T) {
	provider := NewProvider(setupStore(t))
	ctx := context.Background()

	assert.Equal(t, []string{"aa11", "aa22", "bb33"}, provider.CompleteCaseIDs(ctx, ""))
	assert.Equal(t, []string{"aa11", "aa22"}, provider.CompleteCaseIDs(ctx, "aa"))
	assert.Empty(t, provider.CompleteCaseIDs(ctx, "cc"))

	assert.Nil(t, NewProvider(nil).CompleteCaseIDs(ctx, ""))
}

func TestCompleteRecordedProperties(t *testing.T) {
	provider := NewProvider(setupStore(t))
	ctx := context.Background()

	assert.Equal(t, []string{"add_overflows", "vec_below_five"}, provider.CompleteRecordedProperties(ctx, ""))
	assert.Equal(t, []string{"add_overflows"}, provider.CompleteRecordedProperties(ctx, "add"))
	assert.Nil(t, NewProvider(nil).CompleteRecordedProperties(ctx, ""))
}

func TestCompleteFlagValues(t *testing.T) {
	provider := NewProvider(nil)

	tests := []struct {
		flag     string
		prefix   string
		expected []string
	}{
		{"--output", "", []string{"table", "json", "yaml"}},
		{"-o", "j", []string{"json"}},
		{"--log-level", "", []string{"debug", "info", "warn", "error"}},
		{"outcome", "p", []string{"passed", "pruned"}},
		{"--unknown", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, provider.CompleteFlagValues(tt.flag, tt.prefix))
		})
	}
}

func TestCleanFlagName(t *testing.T) {
	assert.Equal(t, "output", cleanFlagName("--output"))
	assert.Equal(t, "o", cleanFlagName("-o"))
	assert.Equal(t, "jobs", cleanFlagName("jobs"))
}
