package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventEntriesChanged indicates entries were added, edited or removed.
	EventEntriesChanged EventType = iota
	// EventInvalidated signals the watcher could not classify a change (or
	// hit an error) and callers should reload everything.
	EventInvalidated
)

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
}

const watchThrottle = 100 * time.Millisecond

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}
	dirs, err := collectDirs(p.basePath)
	if err != nil {
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}
	// Day directories appear as entries are written; follow them.
	return watchDirs(ctx, dirs, true, func(string) bool { return true }, p.log)
}

func (s *sqlStore) Watch(ctx context.Context) (<-chan Event, error) {
	if s.path == "" {
		return nil, errors.New("store: sqlite database path unknown")
	}
	base := filepath.Base(s.path)
	// Writes land in the -wal and -shm siblings as well as the main file.
	match := func(name string) bool {
		return strings.HasPrefix(filepath.Base(name), base)
	}
	return watchDirs(ctx, []string{filepath.Dir(s.path)}, false, match, s.log)
}

func watchDirs(ctx context.Context, dirs []string, follow bool, match func(string) bool, log zerolog.Logger) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warn().Err(err).Msg("watcher close")
			}
		})
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[filepath.Clean(dir)] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Consumer is behind; the pending event already forces a reload.
			}
		}

		throttle := newEventThrottle(watchThrottle)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("watcher error")
				throttle.Enqueue(Event{Type: EventInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if follow && evt.Op&fsnotify.Create == fsnotify.Create {
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						for _, dir := range mustCollect(evt.Name) {
							if _, found := watched[dir]; found {
								continue
							}
							if err := watcher.Add(dir); err != nil {
								log.Warn().Err(err).Str("dir", dir).Msg("watch new directory")
								continue
							}
							watched[dir] = struct{}{}
						}
						throttle.Enqueue(Event{Type: EventEntriesChanged}, send)
						continue
					}
				}
				if !match(evt.Name) {
					continue
				}
				throttle.Enqueue(Event{Type: EventEntriesChanged}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{filepath.Clean(base)}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, filepath.Clean(path))
		}
		return nil
	})
	return dirs, err
}

// mustCollect returns dir and its subdirectories, ignoring walk errors. A
// nested YYYY/MM/DD tree can be created before the watch on its root lands.
func mustCollect(dir string) []string {
	dirs, err := collectDirs(dir)
	if err != nil {
		return []string{filepath.Clean(dir)}
	}
	return dirs
}

// eventThrottle coalesces rapid change notifications so the UI reloads once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]struct{})
	t.timer = nil
	t.mu.Unlock()

	// A full invalidation subsumes plain changes.
	if _, ok := pending[EventInvalidated]; ok {
		send(Event{Type: EventInvalidated})
		return
	}
	if _, ok := pending[EventEntriesChanged]; ok {
		send(Event{Type: EventEntriesChanged})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
