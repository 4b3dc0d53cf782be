package declare

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeType describes a change to a watched property file.
type ChangeType string

const (
	ChangeModified ChangeType = "modified" // Content changed.
	ChangeDeleted  ChangeType = "deleted"  // The file is gone.
	ChangeError    ChangeType = "error"    // The change could not be read.
)

// ChangeEvent reports one change.
type ChangeEvent struct {
	Path      string
	Type      ChangeType
	Err       error
	Timestamp time.Time
}

// ChangeHandler is called for every change.
type ChangeHandler func(event ChangeEvent)

// Watcher reports content changes of property files. It watches their
// directories with fsnotify and falls back to polling when that is not possible.
type Watcher struct {
	paths        []string
	pollInterval time.Duration
	settle       time.Duration

	mu       sync.RWMutex
	running  bool
	stopCh   chan struct{}
	hashes   map[string]string
	handlers []ChangeHandler
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithPollInterval sets the interval of the polling fallback.
func WithPollInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.pollInterval = d }
}

// WithSettleDelay sets how long to wait after a write event before reading
// the file.
func WithSettleDelay(d time.Duration) WatcherOption {
	return func(w *Watcher) { w.settle = d }
}

// NewWatcher returns a watcher for paths.
func NewWatcher(paths []string, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		pollInterval: 2 * time.Second,
		settle:       50 * time.Millisecond,
		stopCh:       make(chan struct{}),
		hashes:       make(map[string]string),
	}
	for _, p := range paths {
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		w.paths = append(w.paths, filepath.Clean(p))
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Paths returns the watched files.
func (w *Watcher) Paths() []string { return w.paths }

// AddHandler registers a handler.
func (w *Watcher) AddHandler(h ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, h)
}

// Start records the current content of every file and begins watching.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	for _, p := range w.paths {
		hash, err := hashFile(p)
		if err != nil {
			w.setRunning(false)
			return &DeclarationError{Source: p, Err: fmt.Errorf("failed to initialize baseline: %w", err)}
		}
		w.mu.Lock()
		w.hashes[p] = hash
		w.mu.Unlock()
	}

	go w.loop(ctx)
	return nil
}

// Stop ends watching.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return nil
	}
	w.running = false
	close(w.stopCh)
	return nil
}

// CheckNow compares every file against its last known content.
func (w *Watcher) CheckNow() []ChangeEvent {
	var events []ChangeEvent
	for _, p := range w.paths {
		if ev := w.check(p); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

func (w *Watcher) setRunning(running bool) {
	w.mu.Lock()
	w.running = running
	w.mu.Unlock()
}

func (w *Watcher) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-w.stopCh:
		return true
	default:
		return false
	}
}

func (w *Watcher) loop(ctx context.Context) {
	for !w.stopped(ctx) {
		if fsw, err := w.newFsWatcher(); err == nil {
			w.runFsnotify(ctx, fsw)
		} else {
			w.runPolling(ctx)
		}
	}
}

func (w *Watcher) newFsWatcher() (*fsnotify.Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	added := make(map[string]bool)
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if added[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
		added[dir] = true
	}
	return fsw, nil
}

func (w *Watcher) runFsnotify(ctx context.Context, fsw *fsnotify.Watcher) {
	defer func() { _ = fsw.Close() }()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if w.handleFsEvent(event) {
				return
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.notify(ChangeEvent{Type: ChangeError, Err: err, Timestamp: time.Now()})
			return
		}
	}
}

// handleFsEvent reports a change to a watched file. It returns true when a
// watched directory went away and polling must take over.
func (w *Watcher) handleFsEvent(event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)
	for _, p := range w.paths {
		if event.Op&fsnotify.Remove != 0 && name == filepath.Dir(p) {
			return true
		}
		if name != p {
			continue
		}
		switch {
		case event.Op&fsnotify.Remove != 0:
			w.notify(w.deleted(p))
		case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
			time.Sleep(w.settle)
			if ev := w.check(p); ev != nil {
				w.notify(*ev)
			}
		}
	}
	return false
}

func (w *Watcher) runPolling(ctx context.Context) {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			for _, ev := range w.CheckNow() {
				w.notify(ev)
			}
			if w.canWatch() {
				return
			}
		}
	}
}

func (w *Watcher) canWatch() bool {
	for _, p := range w.paths {
		if _, err := os.Stat(filepath.Dir(p)); err != nil {
			return false
		}
	}
	return true
}

// check reads p and reports whether it differs from the last content seen.
func (w *Watcher) check(p string) *ChangeEvent {
	hash, err := hashFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			w.mu.RLock()
			known := w.hashes[p] != ""
			w.mu.RUnlock()
			if !known {
				return nil
			}
			ev := w.deleted(p)
			return &ev
		}
		return &ChangeEvent{Path: p, Type: ChangeError, Err: err, Timestamp: time.Now()}
	}

	w.mu.Lock()
	old := w.hashes[p]
	w.hashes[p] = hash
	w.mu.Unlock()
	if hash == old {
		return nil
	}
	return &ChangeEvent{Path: p, Type: ChangeModified, Timestamp: time.Now()}
}

func (w *Watcher) deleted(p string) ChangeEvent {
	w.mu.Lock()
	w.hashes[p] = ""
	w.mu.Unlock()
	return ChangeEvent{Path: p, Type: ChangeDeleted, Timestamp: time.Now()}
}

func (w *Watcher) notify(ev ChangeEvent) {
	w.mu.RLock()
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}

func hashFile(p string) (string, error) {
	content, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}
