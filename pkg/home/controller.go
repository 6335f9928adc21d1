// Package home owns the home screen's canonical state: the loaded entries
// and everything derived from them. Presentation layers subscribe to
// snapshots and never mutate them.
package home

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/dateindex"
	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/emotion"
	"tableflip.dev/oneframe/pkg/store"
)

// Status describes where the controller is in its load lifecycle.
type Status int

const (
	// StatusIdle means nothing has been loaded yet.
	StatusIdle Status = iota
	// StatusReady means the snapshot reflects a successful read.
	StatusReady
	// StatusFailed means the last read failed; the snapshot is empty.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is the published home screen state. Treat it as immutable.
type Snapshot struct {
	Entries  []*diary.Entry
	Emotions []emotion.Summary
	Index    dateindex.Index
	Status   Status
	Err      error
	LoadedAt time.Time
}

// Entry returns the loaded entry with id.
func (s Snapshot) Entry(id int64) (*diary.Entry, bool) {
	for _, e := range s.Entries {
		if e != nil && e.ID == id {
			return e, true
		}
	}
	return nil, false
}

func emptySnapshot(status Status, err error, now time.Time) Snapshot {
	return Snapshot{
		Entries:  []*diary.Entry{},
		Emotions: []emotion.Summary{},
		Index:    dateindex.Index{},
		Status:   status,
		Err:      err,
		LoadedAt: now,
	}
}

// Reader is the slice of the entry store the controller needs.
type Reader interface {
	ReadAll(ctx context.Context) ([]*diary.Entry, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithClock overrides time.Now for LoadedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// Controller loads entries, derives the emotion summary and date index, and
// publishes them to subscribers.
type Controller struct {
	reader Reader
	log    zerolog.Logger
	now    func() time.Time

	// loadMu serialises loads so an older read never overwrites a newer one.
	loadMu sync.Mutex

	mu      sync.RWMutex
	snap    Snapshot
	subs    map[int]chan Snapshot
	nextSub int

	activateOnce sync.Once
	activated    chan struct{}
}

// New creates a controller reading from r.
func New(r Reader, opts ...Option) *Controller {
	c := &Controller{
		reader:    r,
		log:       zerolog.Nop(),
		now:       time.Now,
		subs:      make(map[int]chan Snapshot),
		activated: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.snap = emptySnapshot(StatusIdle, nil, time.Time{})
	return c
}

// Activate starts the one-time initial load in the background and returns a
// channel closed when it finishes. Cancelling ctx abandons the load without
// publishing. Subsequent calls return the same channel.
func (c *Controller) Activate(ctx context.Context) <-chan struct{} {
	c.activateOnce.Do(func() {
		go func() {
			defer close(c.activated)
			if err := c.Load(ctx); err != nil && !isCancel(err) {
				c.log.Debug().Err(err).Msg("initial load finished with error")
			}
		}()
	})
	return c.activated
}

// Load reads every entry and publishes a fresh snapshot. A failed read
// publishes an empty snapshot carrying the error. A cancelled load publishes
// nothing and returns the context error.
func (c *Controller) Load(ctx context.Context) error {
	c.loadMu.Lock()
	defer c.loadMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if c.reader == nil {
		err := errors.New("home: no entry store configured")
		c.publish(emptySnapshot(StatusFailed, err, c.now()))
		return err
	}

	entries, err := c.reader.ReadAll(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		c.log.Debug().Msg("load cancelled, discarding result")
		return ctxErr
	}
	if err != nil {
		c.log.Error().Err(err).Msg("read entries")
		c.publish(emptySnapshot(StatusFailed, err, c.now()))
		return err
	}

	snap := Snapshot{
		Entries:  entries,
		Emotions: emotion.Aggregate(entries),
		Index:    dateindex.Build(entries, dateindex.WithLogger(c.log)),
		Status:   StatusReady,
		LoadedAt: c.now(),
	}
	c.log.Debug().
		Int("entries", len(entries)).
		Int("days", snap.Index.Len()).
		Int("emotions", len(snap.Emotions)).
		Msg("home state loaded")
	c.publish(snap)
	return nil
}

// Watch reloads on every store change until ctx is done or events closes.
func (c *Controller) Watch(ctx context.Context, events <-chan store.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.log.Debug().Int("type", int(ev.Type)).Msg("store changed, reloading")
			if err := c.Load(ctx); err != nil && !isCancel(err) {
				c.log.Warn().Err(err).Msg("reload after store change")
			}
		}
	}
}

// Snapshot returns the latest published state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Subscribe returns a channel that always holds the most recent snapshot not
// yet received. The current snapshot is delivered immediately. The returned
// function unsubscribes and closes the channel.
func (c *Controller) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.snap
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			close(ch)
			c.mu.Unlock()
		})
	}
}

func (c *Controller) publish(snap Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	for _, ch := range c.subs {
		// Replace any unread snapshot so slow subscribers only see the latest.
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
