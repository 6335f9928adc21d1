package add

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/store"
)

func TestAddBackdatesKeepingTimeOfDay(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(store.StaticConfig{Path: t.TempDir(), Kind: store.DriverSQLite})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Close()

	on := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	a := Add{
		ImageURI:    "content://media/7",
		Emotion:     diary.EmotionCalm,
		Title:       "Tea",
		On:          &on,
		Now:         func() time.Time { return time.Date(2025, time.March, 5, 18, 30, 0, 0, time.UTC) },
		Out:         &bytes.Buffer{},
		Persistence: p,
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	e, err := p.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := time.Date(2025, time.February, 28, 18, 30, 0, 0, time.UTC)
	if !e.Created().Equal(want) {
		t.Fatalf("expected %v, got %v", want, e.Created())
	}
	if d, _ := e.Date(); d != (calendar.Date{Year: 2025, Month: time.February, Day: 28}) {
		t.Fatalf("unexpected date %s", d)
	}
}

func TestAddBackdatesUsingUTCTimeOfDay(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(store.StaticConfig{Path: t.TempDir(), Kind: store.DriverDiskv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Close()

	seoul := time.FixedZone("KST", 9*60*60)
	on := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	a := Add{
		ImageURI: "content://media/8",
		On:       &on,
		// 08:15 in Seoul is 23:15 UTC on the previous day.
		Now:         func() time.Time { return time.Date(2025, time.March, 5, 8, 15, 0, 0, seoul) },
		Out:         &bytes.Buffer{},
		Persistence: p,
	}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	e, err := p.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := time.Date(2025, time.February, 28, 23, 15, 0, 0, time.UTC)
	if !e.Created().Equal(want) {
		t.Fatalf("expected %v, got %v", want, e.Created())
	}
	if d, _ := e.Date(); d != (calendar.Date{Year: 2025, Month: time.February, Day: 28}) {
		t.Fatalf("unexpected date %s", d)
	}
}

func TestAddWithoutImageFails(t *testing.T) {
	a := Add{Out: &bytes.Buffer{}}
	if err := a.Do(context.Background()); !errors.Is(err, diary.ErrNoImage) {
		t.Fatalf("expected ErrNoImage, got %v", err)
	}
}
