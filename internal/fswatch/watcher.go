// Package fswatch notifies a callback when the entries of a directory change.
package fswatch

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonboulle/clockwork"

	"mini-os/internal/logger"
)

const DefaultDebounce = 150 * time.Millisecond

// Watcher follows a single directory at a time. Bursts of events are
// coalesced into one onChange call after the debounce interval. onChange
// runs on the watcher goroutine, not on the UI thread.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	dir      string
	onChange func()
	debounce time.Duration
	clock    clockwork.Clock
	pending  clockwork.Timer
	logger   logger.Logger
	closed   bool
	doneCh   chan struct{}
}

type Option func(*Watcher)

func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

func WithClock(c clockwork.Clock) Option {
	return func(w *Watcher) { w.clock = c }
}

func WithLogger(l logger.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

func New(onChange func(), opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{
		watcher:  fw,
		onChange: onChange,
		debounce: DefaultDebounce,
		clock:    clockwork.NewRealClock(),
		logger:   logger.Nop{},
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Watch moves the watch to dir. The previous directory, if any, is released
// even when adding the new one fails.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fmt.Errorf("watch %s: watcher closed", dir)
	}
	if w.dir == dir {
		return nil
	}
	if w.dir != "" {
		_ = w.watcher.Remove(w.dir)
		w.dir = ""
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	w.dir = dir

	w.logger.Debug("DirWatcher", "watching directory", map[string]interface{}{
		"dir": dir,
	})
	return nil
}

func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()

	err := w.watcher.Close()
	<-w.doneCh
	return err
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warning("DirWatcher", "watch error", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.pending != nil {
		w.pending.Reset(w.debounce)
		return
	}
	w.pending = w.clock.AfterFunc(w.debounce, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.pending = nil
	w.mu.Unlock()

	w.onChange()
}
