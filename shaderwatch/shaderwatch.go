// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaderwatch reports when shader source files change on disk,
// so that a render loop can recompile them without restarting.
package shaderwatch

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"cogentcore.org/glquad/base/fsx"
	"github.com/fsnotify/fsnotify"
)

// Watcher watches a set of files for changes. Editors often save by
// writing a new file and renaming it over the old one, so the parent
// directories are watched and events are filtered by file path.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	changed atomic.Bool
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New returns a new Watcher for the given file paths.
// The files do not need to exist yet.
func New(paths ...string) (*Watcher, error) {
	dirs, err := fsx.Dirs(paths...)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaderwatch: %w", err)
	}
	w := &Watcher{watcher: fw, files: map[string]bool{}, done: make(chan struct{})}
	for _, p := range paths {
		fabs, err := filepath.Abs(p)
		if err != nil {
			fw.Close()
			return nil, err
		}
		w.files[fabs] = true
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("shaderwatch: watching %q: %w", dir, err)
		}
	}
	w.wg.Add(1)
	go w.watch()
	slog.Info("watching shaders", "files", paths)
	return w, nil
}

func (w *Watcher) watch() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			slog.Debug("shader changed", "file", event.Name, "op", event.Op)
			w.changed.Store(true)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("shaderwatch", "err", err)
		}
	}
}

// Changed returns whether any watched file has changed since
// the last call, and clears the flag. It never blocks.
func (w *Watcher) Changed() bool {
	return w.changed.Swap(false)
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
