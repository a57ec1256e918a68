package policy_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskvet/taskvet/internal/policy"
)

func writePolicyFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func startWatcher(t *testing.T, path string) (*policy.Watcher, chan *policy.Config, context.CancelFunc) {
	t.Helper()

	watcher, err := policy.NewWatcher(path, policy.WithDebounceDelay(10*time.Millisecond))
	require.NoError(t, err)

	reloads := make(chan *policy.Config, 4)
	watcher.OnReload(func(cfg *policy.Config) error {
		reloads <- cfg
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = watcher.Watch(ctx)
	}()

	return watcher, reloads, cancel
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	writePolicyFile(t, path, "lint:\n  max_complexity: 6\n")

	watcher, reloads, cancel := startWatcher(t, path)
	defer cancel()
	defer func() { _ = watcher.Close() }()

	// Give the watch loop time to start before touching the file.
	time.Sleep(50 * time.Millisecond)

	writePolicyFile(t, path, "lint:\n  max_complexity: 8\n")

	select {
	case cfg := <-reloads:
		require.Equal(t, 8, cfg.Lint.MaxComplexity)
	case <-time.After(2 * time.Second):
		t.Fatal("expected reload callback after file write")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	writePolicyFile(t, path, "lint:\n  max_complexity: 6\n")

	watcher, reloads, cancel := startWatcher(t, path)
	defer cancel()
	defer func() { _ = watcher.Close() }()

	time.Sleep(50 * time.Millisecond)

	writePolicyFile(t, filepath.Join(dir, "notes.yaml"), "unrelated: true\n")

	select {
	case <-reloads:
		t.Fatal("expected no reload for a sibling file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSkipsCallbacksOnParseFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	writePolicyFile(t, path, "lint:\n  max_complexity: 6\n")

	watcher, reloads, cancel := startWatcher(t, path)
	defer cancel()
	defer func() { _ = watcher.Close() }()

	time.Sleep(50 * time.Millisecond)

	writePolicyFile(t, path, "lint: [broken")

	select {
	case <-reloads:
		t.Fatal("expected no reload callback for unparsable policy")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherPathIsAbsolute(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	writePolicyFile(t, path, "lint:\n  max_complexity: 6\n")

	watcher, err := policy.NewWatcher(path)
	require.NoError(t, err)
	defer func() { _ = watcher.Close() }()

	require.True(t, filepath.IsAbs(watcher.Path()))
}

func TestWatcherCloseTwice(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	writePolicyFile(t, path, "lint:\n  max_complexity: 6\n")

	watcher, err := policy.NewWatcher(path)
	require.NoError(t, err)

	require.NoError(t, watcher.Close())
	require.True(t, errors.Is(watcher.Close(), policy.ErrWatcherClosed))
}
