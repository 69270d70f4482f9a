package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/kastheco/navrail/log"
	"github.com/kastheco/navrail/nav"
)

const defaultDebounce = 150 * time.Millisecond

// TreeUpdate is one reload result: either fresh groups or the error that
// kept the previous tree in place.
type TreeUpdate struct {
	Groups []nav.Group
	Err    error
}

// TreeWatcher reloads a tree file whenever it changes on disk.
type TreeWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	updates  chan TreeUpdate
	debounce time.Duration
}

// NewTreeWatcher creates a watcher for the tree file at path. The parent
// directory is watched so editors that replace the file on save still
// trigger a reload.
func NewTreeWatcher(path string) (*TreeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch tree directory: %w", err)
	}
	return &TreeWatcher{
		path:     path,
		watcher:  watcher,
		updates:  make(chan TreeUpdate, 1),
		debounce: defaultDebounce,
	}, nil
}

// Updates delivers reload results. It is closed when Run returns.
func (w *TreeWatcher) Updates() <-chan TreeUpdate {
	return w.updates
}

// Run processes file system events until ctx is done.
func (w *TreeWatcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			// Only reload on write/create/rename (not chmod)
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			// Debounce bursts from editors writing in several steps.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			groups, err := LoadTree(w.path)
			if err != nil {
				log.WarningLog.Printf("reload tree %s: %v", w.path, err)
			}
			select {
			case w.updates <- TreeUpdate{Groups: groups, Err: err}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Errors are logged but don't stop the watcher
			log.WarningLog.Printf("tree watcher: %v", err)
		}
	}
}
