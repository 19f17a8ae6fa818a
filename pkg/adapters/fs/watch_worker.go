package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/launchdeck/pkg/core"
)

// DebounceInterval coalesces the burst of events a single rename produces.
const DebounceInterval = 50 * time.Millisecond

// Watch reports changes to the collection file that were not made by this
// store, e.g. a user editing notes.json by hand. The channel is closed when
// ctx is cancelled.
func (s *Store[R]) Watch(ctx context.Context) (<-chan core.Event, error) {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	// Watch the directory, not the file: atomic renames replace the inode.
	if err := watcher.Add(filepath.Dir(s.Path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(s.Path), err)
	}

	events := make(chan core.Event)
	w := &watchWorker[R]{store: s, watcher: watcher, events: events}

	s.setWatching(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("collection watcher stopped", "path", s.Path, "error", err)
	}))

	return events, nil
}

type watchWorker[R any] struct {
	store   *Store[R]
	watcher *fsnotify.Watcher
	events  chan<- core.Event
}

// run is the main event loop for the watcher.
func (w *watchWorker[R]) run(ctx context.Context) error {
	defer close(w.events)
	defer w.store.setWatching(false)
	defer w.watcher.Close()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var pending core.EventType
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher events channel closed")
			}
			if eType := w.classify(event); eType != "" {
				pending = eType
				timer.Reset(DebounceInterval)
			}

		case <-timer.C:
			eType := w.settle(pending)
			pending = ""
			if eType == "" {
				continue
			}
			select {
			case w.events <- core.Event{Type: eType, Collection: w.store.config.Collection, Timestamp: time.Now().Unix()}:
			case <-ctx.Done():
				return nil
			}

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// classify maps a raw filesystem event on the collection file to an event type.
func (w *watchWorker[R]) classify(event fsnotify.Event) core.EventType {
	if isTempFile(event.Name) || filepath.Clean(event.Name) != filepath.Clean(w.store.Path) {
		return ""
	}
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// settle inspects the file once the burst is over. Content identical to the
// store's last write is ours and is dropped.
func (w *watchWorker[R]) settle(pending core.EventType) core.EventType {
	data, err := os.ReadFile(w.store.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.EventDelete
		}
		return ""
	}
	if w.store.isOwnWrite(data) {
		return ""
	}
	if pending == core.EventDelete {
		// Removed and recreated within the debounce window.
		return core.EventModify
	}
	return pending
}

func (s *Store[R]) setWatching(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watching = active
}
