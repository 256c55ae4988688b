// Package watch observes the configuration file and reports changes so the
// running TUI can rebuild its snippet catalog without restarting.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher watches the config file for changes and triggers reloads.
// The parent directory is watched rather than the file itself because most
// editors replace files atomically (write temp, then rename), which drops an
// inode-level watch.
type ConfigWatcher struct {
	watcher   *fsnotify.Watcher
	path      string
	onChanged func(path string)
	closeOnce sync.Once
	debounce  time.Duration
}

// NewConfigWatcher creates a watcher for the given config file path.
func NewConfigWatcher(path string, onChanged func(path string)) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cw := &ConfigWatcher{
		watcher:   watcher,
		path:      filepath.Clean(path),
		onChanged: onChanged,
		debounce:  500 * time.Millisecond,
	}

	if err := watcher.Add(filepath.Dir(cw.path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return cw, nil
}

// Run processes file system events until the context is canceled or the
// watcher closes. Editors emit bursts of events per save, so each event
// resets a quiet-period timer and the callback fires once after the burst;
// the latest write is never dropped.
func (cw *ConfigWatcher) Run(ctx context.Context) error {
	var (
		pending *time.Timer
		fire    <-chan time.Time
	)
	stopPending := func() {
		if pending != nil {
			pending.Stop()
			pending = nil
			fire = nil
		}
	}
	defer stopPending()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			stopPending()
			pending = time.NewTimer(cw.debounce)
			fire = pending.C

		case <-fire:
			pending = nil
			fire = nil
			if cw.onChanged != nil {
				cw.onChanged(cw.path)
			}

		case _, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			// Ignore errors for now
		}
	}
}

// Close stops the watcher and releases resources
func (cw *ConfigWatcher) Close() error {
	var err error
	cw.closeOnce.Do(func() {
		err = cw.watcher.Close()
	})
	return err
}
