// Package watcher invalidates the corpus cache when authored content
// changes on disk. Intended for development; production deploys restart the
// process instead.
package watcher

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultDebounce = 400 * time.Millisecond

// Watcher watches the content directories and fires a single callback after
// a burst of file changes settles.
type Watcher struct {
	dirs     []string
	onChange func()
	debounce time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	timer   *time.Timer
	started bool
	done    chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets a logger for debug output on file events.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithDebounce overrides the settle interval before onChange fires.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New creates a watcher over dirs. onChange runs once per settled burst of
// changes to .yaml files under those directories.
func New(dirs []string, onChange func(), opts ...Option) *Watcher {
	w := &Watcher{
		dirs:     dirs,
		onChange: onChange,
		debounce: defaultDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins watching. It runs until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return nil
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			w.mu.Unlock()
			return err
		}
	}
	w.watcher = fw
	w.started = true
	w.mu.Unlock()

	if w.logger != nil {
		w.logger.Debug("content watcher starting", zap.Strings("dirs", w.dirs))
	}
	go w.run(ctx)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil && w.logger != nil {
				w.logger.Debug("content watcher error", zap.Error(err))
			}
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	if !strings.HasSuffix(ev.Name, ".yaml") {
		return
	}
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if w.logger != nil {
		w.logger.Debug("content changed", zap.String("op", ev.Op.String()), zap.String("path", ev.Name))
	}
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.onChange)
	w.mu.Unlock()
}

// Stop stops the watcher and releases the underlying fsnotify resources.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	w.started = false
	close(w.done)
	if w.timer != nil {
		w.timer.Stop()
	}
	_ = w.watcher.Close()
}
