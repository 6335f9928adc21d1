package home

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/store"
)

type fakeReader struct {
	mu      sync.Mutex
	entries []*diary.Entry
	err     error
	calls   atomic.Int32
	// block, when set, holds ReadAll until it is closed or ctx ends.
	block chan struct{}
}

func (f *fakeReader) ReadAll(ctx context.Context) ([]*diary.Entry, error) {
	f.calls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries, f.err
}

func (f *fakeReader) set(entries []*diary.Entry) {
	f.mu.Lock()
	f.entries = entries
	f.mu.Unlock()
}

func ms(day, hour int) int64 {
	return time.Date(2025, time.March, day, hour, 0, 0, 0, time.UTC).UnixMilli()
}

func sampleEntries() []*diary.Entry {
	return []*diary.Entry{
		{ID: 1, CreatedAt: ms(5, 8), ImageURI: "a", Emotion: diary.EmotionHappy},
		{ID: 2, CreatedAt: ms(5, 20), ImageURI: "b", Emotion: diary.EmotionSad},
		{ID: 3, CreatedAt: ms(7, 9), ImageURI: "c", Emotion: diary.EmotionHappy},
	}
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for load")
	}
}

func TestSnapshotIdleBeforeLoad(t *testing.T) {
	c := New(&fakeReader{})
	snap := c.Snapshot()
	if snap.Status != StatusIdle {
		t.Fatalf("expected idle, got %s", snap.Status)
	}
	if snap.Entries == nil || snap.Emotions == nil || snap.Index == nil {
		t.Fatalf("expected empty non-nil collections, got %+v", snap)
	}
}

func TestLoadPublishesDerivedState(t *testing.T) {
	loaded := time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
	c := New(&fakeReader{entries: sampleEntries()}, WithClock(func() time.Time { return loaded }))
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	snap := c.Snapshot()
	if snap.Status != StatusReady || snap.Err != nil {
		t.Fatalf("expected ready snapshot, got %s (%v)", snap.Status, snap.Err)
	}
	if !snap.LoadedAt.Equal(loaded) {
		t.Fatalf("expected loaded at %v, got %v", loaded, snap.LoadedAt)
	}
	if len(snap.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(snap.Entries))
	}
	if id, ok := snap.Index.Lookup(calendar.Date{Year: 2025, Month: time.March, Day: 5}); !ok || id != 2 {
		t.Fatalf("expected March 5 to map to 2, got %d (%v)", id, ok)
	}
	if snap.Index.Len() != 2 {
		t.Fatalf("expected 2 indexed days, got %d", snap.Index.Len())
	}
	if len(snap.Emotions) != 2 || snap.Emotions[0].Emotion != diary.EmotionHappy || snap.Emotions[0].Count != 2 {
		t.Fatalf("unexpected emotions %+v", snap.Emotions)
	}
	if e, ok := snap.Entry(3); !ok || e.ImageURI != "c" {
		t.Fatalf("expected entry 3 to be found, got %v", e)
	}
	if _, ok := snap.Entry(42); ok {
		t.Fatalf("expected entry 42 to be missing")
	}
}

func TestLoadFailurePublishesEmptyFailed(t *testing.T) {
	r := &fakeReader{entries: sampleEntries()}
	c := New(r)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	boom := errors.New("disk on fire")
	r.mu.Lock()
	r.err = boom
	r.mu.Unlock()

	if err := c.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected read error, got %v", err)
	}
	snap := c.Snapshot()
	if snap.Status != StatusFailed || !errors.Is(snap.Err, boom) {
		t.Fatalf("expected failed snapshot carrying error, got %s (%v)", snap.Status, snap.Err)
	}
	if len(snap.Entries) != 0 || len(snap.Emotions) != 0 || snap.Index.Len() != 0 {
		t.Fatalf("expected empty snapshot after failure, got %+v", snap)
	}
}

func TestNilReaderFails(t *testing.T) {
	c := New(nil)
	if err := c.Load(context.Background()); err == nil {
		t.Fatalf("expected error without a reader")
	}
	if c.Snapshot().Status != StatusFailed {
		t.Fatalf("expected failed status")
	}
}

func TestActivateIsIdempotent(t *testing.T) {
	r := &fakeReader{entries: sampleEntries()}
	c := New(r)
	first := c.Activate(context.Background())
	second := c.Activate(context.Background())
	if first != second {
		t.Fatalf("expected the same done channel")
	}
	wait(t, first)
	c.Activate(context.Background())
	if n := r.calls.Load(); n != 1 {
		t.Fatalf("expected a single read, got %d", n)
	}
	if c.Snapshot().Status != StatusReady {
		t.Fatalf("expected ready after activation")
	}
}

func TestCancelledActivatePublishesNothing(t *testing.T) {
	r := &fakeReader{entries: sampleEntries(), block: make(chan struct{})}
	c := New(r)
	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()
	<-updates // initial idle snapshot

	ctx, cancel := context.WithCancel(context.Background())
	done := c.Activate(ctx)
	cancel()
	wait(t, done)

	if c.Snapshot().Status != StatusIdle {
		t.Fatalf("expected idle after cancelled load, got %s", c.Snapshot().Status)
	}
	select {
	case snap := <-updates:
		t.Fatalf("expected no publication, got %s", snap.Status)
	default:
	}
}

func TestSubscribeDeliversLatest(t *testing.T) {
	r := &fakeReader{}
	c := New(r)
	updates, unsubscribe := c.Subscribe()

	if snap := <-updates; snap.Status != StatusIdle {
		t.Fatalf("expected current snapshot on subscribe, got %s", snap.Status)
	}

	// Two loads without reading: only the newest survives.
	r.set(sampleEntries()[:1])
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	r.set(sampleEntries())
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	snap := <-updates
	if len(snap.Entries) != 3 {
		t.Fatalf("expected newest snapshot with 3 entries, got %d", len(snap.Entries))
	}
	select {
	case extra := <-updates:
		t.Fatalf("expected nothing queued, got %d entries", len(extra.Entries))
	default:
	}

	unsubscribe()
	unsubscribe()
	if _, ok := <-updates; ok {
		t.Fatalf("expected channel closed after unsubscribe")
	}
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load after unsubscribe: %v", err)
	}
}

func TestWatchReloadsOnEvents(t *testing.T) {
	r := &fakeReader{}
	c := New(r)
	updates, unsubscribe := c.Subscribe()
	defer unsubscribe()
	<-updates

	events := make(chan store.Event)
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		c.Watch(ctx, events)
		close(stopped)
	}()

	r.set(sampleEntries())
	events <- store.Event{Type: store.EventEntriesChanged}

	select {
	case snap := <-updates:
		if snap.Status != StatusReady || len(snap.Entries) != 3 {
			t.Fatalf("unexpected snapshot after change %s/%d", snap.Status, len(snap.Entries))
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop on cancel")
	}
}

func TestWatchStopsWhenEventsClose(t *testing.T) {
	c := New(&fakeReader{})
	events := make(chan store.Event)
	close(events)
	done := make(chan struct{})
	go func() {
		c.Watch(context.Background(), events)
		close(done)
	}()
	wait(t, done)
}
