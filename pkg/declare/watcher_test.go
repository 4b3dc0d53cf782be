package declare

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomagicln/propverify/internal/testutil"
)

func TestWatcherStartMissingFile(t *testing.T) {
	w := NewWatcher([]string{filepath.Join(t.TempDir(), "missing.yaml")})

	err := w.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize baseline")

	// A failed start leaves the watcher startable.
	err = w.Start(context.Background())
	assert.NotContains(t, err.Error(), "already running")
}

func TestWatcherCheckNow(t *testing.T) {
	path := testutil.TempPropertyFile(t, testutil.SampleProperties)
	w := NewWatcher([]string{path})

	// Without a baseline every file counts as changed.
	require.Len(t, w.CheckNow(), 1)
	assert.Empty(t, w.CheckNow())

	require.NoError(t, os.WriteFile(path, []byte(testutil.BrokenProperties), 0644))
	events := w.CheckNow()
	require.Len(t, events, 1)
	assert.Equal(t, ChangeModified, events[0].Type)
	assert.Equal(t, path, events[0].Path)

	// The new content is the baseline now.
	assert.Empty(t, w.CheckNow())

	require.NoError(t, os.Remove(path))
	events = w.CheckNow()
	require.Len(t, events, 1)
	assert.Equal(t, ChangeDeleted, events[0].Type)
	assert.Empty(t, w.CheckNow())
}

func TestWatcherStartTwice(t *testing.T) {
	path := testutil.TempPropertyFile(t, testutil.SampleProperties)
	w := NewWatcher([]string{path})

	require.NoError(t, w.Start(context.Background()))
	defer func() { _ = w.Stop() }()

	err := w.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already running")
}

func TestWatcherNotifiesHandlers(t *testing.T) {
	path := testutil.TempPropertyFile(t, testutil.SampleProperties)
	w := NewWatcher([]string{path}, WithPollInterval(20*time.Millisecond), WithSettleDelay(time.Millisecond))

	var mu sync.Mutex
	var events []ChangeEvent
	w.AddHandler(func(ev ChangeEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer func() { _ = w.Stop() }()

	// Give fsnotify a moment to register the directory.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(testutil.BrokenProperties), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, ev := range events {
			if ev.Type == ChangeModified && ev.Path == path {
				return true
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatcherStop(t *testing.T) {
	path := testutil.TempPropertyFile(t, testutil.SampleProperties)
	w := NewWatcher([]string{path})

	require.NoError(t, w.Stop())
	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
