// Package watcher reports edits to the input files using fsnotify.
//
// Parent directories are watched rather than the files themselves, so that
// editors which save by writing a temporary file and renaming it over the
// original are still noticed.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/authorlist/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/authorlist/internal/core/ports/driven"
	"github.com/custodia-labs/authorlist/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce coalesces the several events a single save produces.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a fixed set of files.
type Watcher struct {
	debounce time.Duration
}

// New creates a watcher. A non-positive debounce uses DefaultDebounce.
func New(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch blocks until ctx is done. After each burst of writes to one of
// paths, onChange is called once per changed file with its absolute path,
// in lexical order. Returns nil on cancellation.
func (w *Watcher) Watch(ctx context.Context, paths []string, onChange func(path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(filesystem.ResolvePath(p))
		if err != nil {
			return fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching directory %s", dir)
	}

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isEdit(event) {
				continue
			}
			name := filepath.Clean(event.Name)
			if _, ok := targets[name]; !ok {
				continue
			}
			logger.Debug("%s: %s", event.Op, name)
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			clear(pending)
			for _, name := range changed {
				onChange(name)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

func isEdit(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}
