package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tabsweep/internal/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu     sync.Mutex
	events []application.Event
}

func (s *recordingSender) Send(_ context.Context, event application.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func startWatcher(t *testing.T, path string, sender Sender) {
	t.Helper()
	startConfiguredWatcher(t, NewWatcher(path, sender, 20*time.Millisecond))
}

func startConfiguredWatcher(t *testing.T, w *Watcher) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	// Let the watcher register before the test writes.
	time.Sleep(50 * time.Millisecond)
}

func TestWatcherQueuesReloadOnStateWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o600))

	sender := &recordingSender{}
	startWatcher(t, path, sender)

	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[settings]\n"), 0o600))

	require.Eventually(t, func() bool { return sender.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
	sender.mu.Lock()
	assert.IsType(t, application.ReloadEvent{}, sender.events[0])
	sender.mu.Unlock()
}

func TestWatcherDetectsAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	sender := &recordingSender{}
	startWatcher(t, path, sender)

	tmp := filepath.Join(dir, "state.toml.tmp")
	require.NoError(t, os.WriteFile(tmp, []byte("version = 1\n"), 0o600))
	require.NoError(t, os.Rename(tmp, path))

	require.Eventually(t, func() bool { return sender.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	sender := &recordingSender{}
	startWatcher(t, path, sender)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive.db"), []byte("x"), 0o600))

	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, sender.count())
}

func TestWatcherFailsForMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing", "state.toml"), &recordingSender{}, 0)

	err := w.Run(context.Background())

	require.Error(t, err)
}

type fixedOwnWrites struct {
	mu  sync.Mutex
	own bool
}

func (f *fixedOwnWrites) IsOwnWrite() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.own, nil
}

func (f *fixedOwnWrites) set(own bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.own = own
}

func TestWatcherSkipsOwnWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o600))

	sender := &recordingSender{}
	own := &fixedOwnWrites{own: true}
	startConfiguredWatcher(t, NewWatcher(path, sender, 20*time.Millisecond).IgnoreOwnWrites(own))

	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[settings]\n"), 0o600))
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, sender.count())

	own.set(false)
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n[pins]\n"), 0o600))
	require.Eventually(t, func() bool { return sender.count() >= 1 }, 2*time.Second, 10*time.Millisecond)
}
