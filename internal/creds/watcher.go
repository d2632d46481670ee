package creds

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"simpletools/pkg/logging"
)

// debounceInterval is how long the watcher waits after the last file event
// before firing onChange. One auth run touches the service directory and
// the credential file in quick succession; this collapses that burst into
// a single notification.
const debounceInterval = 500 * time.Millisecond

// Watcher fires a callback when credential files change on disk, so a
// long-running server picks up keys written by the auth flow without a
// restart. It is best-effort: when the watch cannot be established the
// server keeps working and cached entries simply age out.
type Watcher struct {
	mu       sync.Mutex
	dir      string
	onChange func()

	fsWatcher *fsnotify.Watcher
	stopCh    chan struct{}
	running   bool

	debounceMu    sync.Mutex
	debounceTimer *time.Timer
}

// NewWatcher creates a watcher over a credential directory laid out the way
// FileStore writes it: one subdirectory per service, one file per user.
// onChange runs debounced on every relevant change.
func NewWatcher(dir string, onChange func()) *Watcher {
	return &Watcher{
		dir:      dir,
		onChange: onChange,
	}
}

// Start begins watching. It is a no-op when already running.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fsWatcher.Add(w.dir); err != nil {
		fsWatcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	// fsnotify does not recurse, and credential files live one level down
	// in per-service directories. Watch the ones that already exist; new
	// ones are picked up from create events.
	if entries, err := os.ReadDir(w.dir); err == nil {
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			serviceDir := filepath.Join(w.dir, entry.Name())
			if err := fsWatcher.Add(serviceDir); err != nil {
				logging.Warn("CredsWatcher", "Failed to watch %s: %v", serviceDir, err)
			}
		}
	}

	w.fsWatcher = fsWatcher
	w.stopCh = make(chan struct{})
	w.running = true

	go w.processEvents(fsWatcher, w.stopCh)

	logging.Info("CredsWatcher", "Watching %s for credential changes", w.dir)
	return nil
}

// Stop ends the watch and releases the underlying resources. It is safe to
// call on a watcher that never started.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	close(w.stopCh)

	w.debounceMu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMu.Unlock()

	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	w.running = false

	if err != nil {
		return fmt.Errorf("failed to close file watcher: %w", err)
	}

	logging.Info("CredsWatcher", "Stopped watching %s", w.dir)
	return nil
}

func (w *Watcher) processEvents(fsWatcher *fsnotify.Watcher, stopCh chan struct{}) {
	for {
		select {
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(fsWatcher, event)

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Warn("CredsWatcher", "File watcher error: %v", err)

		case <-stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(fsWatcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	// A new service directory: bring it under watch. The credential file
	// inside may land before the watch is live, so notify for the
	// directory itself too.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := fsWatcher.Add(event.Name); err != nil {
				logging.Warn("CredsWatcher", "Failed to watch %s: %v", event.Name, err)
			}
			w.scheduleChange()
			return
		}
	}

	if !strings.HasSuffix(filepath.Base(event.Name), credentialsFileSuffix) {
		return
	}

	logging.Debug("CredsWatcher", "Credential file changed: %s (%s)", event.Name, event.Op)
	w.scheduleChange()
}

func (w *Watcher) scheduleChange() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(debounceInterval, w.onChange)
}
