// Package watcher reloads survey files as new stations are appended while
// drilling.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SurveyWatcher watches a survey file and fires a debounced callback when
// it changes. WITS bridges and manual edits both append to the file, often
// in bursts; the debounce collapses those into one reload.
type SurveyWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	debounce time.Duration
	timer    *time.Timer
	onChange func()
	done     chan struct{}
}

// New creates a watcher with the given debounce interval
func New(debounce time.Duration) (*SurveyWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	return &SurveyWatcher{
		watcher:  fsw,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts watching the survey file and invokes onChange after writes
// settle. onChange runs on the watcher goroutine timer; callers that need
// main-thread handling should only flip a flag in it.
func (w *SurveyWatcher) Watch(file string, onChange func()) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	if err := w.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	w.mu.Lock()
	w.onChange = onChange
	w.mu.Unlock()

	go w.run()
	return nil
}

func (w *SurveyWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.scheduleReload()
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

func (w *SurveyWatcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
}

// Close stops the watcher
func (w *SurveyWatcher) Close() error {
	close(w.done)
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
