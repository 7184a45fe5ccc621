package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/quipnote/pkg/core"
)

// DebounceWindow coalesces bursts of writes to the same slot file.
const DebounceWindow = 50 * time.Millisecond

// Watch observes the data directory and emits one event per settled change
// to a slot file whose name matches pattern (doublestar syntax). An empty
// pattern matches every slot file with the configured extension.
// The returned channel is closed when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*" + s.config.Ext
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event)
	w := &watchWorker{
		store:     s,
		pattern:   pattern,
		events:    events,
		watcher:   watcher,
		debouncer: newDebouncer(DebounceWindow),
	}
	s.setWatcherActive(true)

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		s.reportError(fmt.Errorf("watcher: %w", err))
	}))

	return events, nil
}

func (s *Store) reportError(err error) {
	if s.config.ErrorHandler != nil {
		s.config.ErrorHandler(err)
		return
	}
	s.config.Logger.Error("slot watcher failed", "error", err)
}

type watchWorker struct {
	store     *Store
	pattern   string
	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
}

// run is the main event loop for the watcher.
func (w *watchWorker) run(ctx context.Context) (err error) {
	logger := w.store.config.Logger
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if logger.Enabled(ctx, slog.LevelDebug) {
				logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer close(w.events)
	defer w.store.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Every pending timer must finish before the events channel is closed.
	w.debouncer.stopAndWait()
	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.reportError(wErr)
		}
	}
}

// processFilesystemEvent filters, maps and debounces a single fsnotify event.
func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) bool {
	w.store.config.Logger.Debug("event received", "name", event.Name)

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) {
		return false
	}
	if ok, _ := doublestar.Match(w.pattern, name); !ok {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.debouncer.add(core.Event{
		Type:      eType,
		Key:       strings.TrimSuffix(name, w.store.config.Ext),
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		w.store.recordEvent(e)
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
	return true
}

// mapEventType folds fsnotify operations into slot events. An atomic write
// shows up as a Create of the target (the rename), so it maps to Modify.
func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		return core.EventModify
	default:
		return ""
	}
}

// debouncer keeps the last event per key and delivers it once the key has
// been quiet for the window.
type debouncer struct {
	window time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(e core.Event, deliver func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[e.Key]; ok && t.Stop() {
		d.wg.Done()
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.window, func() {
		defer d.wg.Done()
		d.mu.Lock()
		if d.timers[e.Key] == t {
			delete(d.timers, e.Key)
		}
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			deliver(e)
		}
	})
	d.timers[e.Key] = t
}

// stopAndWait drops pending events and waits for timers already firing.
func (d *debouncer) stopAndWait() {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()
	d.wg.Wait()
}
