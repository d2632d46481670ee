package creds

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func waitForChanges(t *testing.T, counter *atomic.Int64, want int64) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if counter.Load() >= want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("expected at least %d change notifications, got %d", want, counter.Load())
}

func TestWatcherNotifiesOnCredentialWrite(t *testing.T) {
	baseDir := t.TempDir()
	store, err := NewFileStore(baseDir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var changes atomic.Int64
	watcher := NewWatcher(baseDir, func() { changes.Add(1) })
	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	// The save creates the service directory and the credential file; the
	// debounce collapses that into one notification.
	if err := store.Save(context.Background(), "simple-tools", "alice", Credentials{APIKey: "sk-x"}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	waitForChanges(t, &changes, 1)
}

func TestWatcherNotifiesOnExistingServiceDir(t *testing.T) {
	baseDir := t.TempDir()
	store, err := NewFileStore(baseDir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	// Service directory exists before the watch starts.
	if err := store.Save(ctx, "simple-tools", "alice", Credentials{APIKey: "sk-old"}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	var changes atomic.Int64
	watcher := NewWatcher(baseDir, func() { changes.Add(1) })
	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	if err := store.Save(ctx, "simple-tools", "alice", Credentials{APIKey: "sk-new"}); err != nil {
		t.Fatalf("failed to overwrite: %v", err)
	}

	waitForChanges(t, &changes, 1)
}

func TestWatcherIgnoresUnrelatedFiles(t *testing.T) {
	baseDir := t.TempDir()

	var changes atomic.Int64
	watcher := NewWatcher(baseDir, func() { changes.Add(1) })
	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	if err := os.WriteFile(filepath.Join(baseDir, "notes.txt"), []byte("scratch"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	time.Sleep(2 * debounceInterval)
	if got := changes.Load(); got != 0 {
		t.Errorf("expected no notifications for unrelated files, got %d", got)
	}
}

func TestWatcherStartStop(t *testing.T) {
	watcher := NewWatcher(t.TempDir(), func() {})

	if err := watcher.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	// Second start is a no-op.
	if err := watcher.Start(); err != nil {
		t.Fatalf("second start should be a no-op: %v", err)
	}

	if err := watcher.Stop(); err != nil {
		t.Fatalf("failed to stop: %v", err)
	}
	// Stop on a stopped watcher is safe.
	if err := watcher.Stop(); err != nil {
		t.Fatalf("second stop should be a no-op: %v", err)
	}
}

func TestWatcherStartFailsOnMissingDir(t *testing.T) {
	watcher := NewWatcher(filepath.Join(t.TempDir(), "does-not-exist"), func() {})
	if err := watcher.Start(); err == nil {
		watcher.Stop()
		t.Fatal("expected error for missing directory")
	}
}
