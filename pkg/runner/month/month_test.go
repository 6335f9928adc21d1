package month

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/store"
)

func TestMonthOpensOnlyRecordedDays(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(store.StaticConfig{Path: t.TempDir(), Kind: store.DriverDiskv})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defer p.Close()
	ctx := context.Background()

	first := &diary.Entry{CreatedAt: time.Date(2025, time.February, 14, 8, 0, 0, 0, time.UTC).UnixMilli(), ImageURI: "first", Title: "Breakfast"}
	second := &diary.Entry{CreatedAt: time.Date(2025, time.February, 14, 21, 0, 0, 0, time.UTC).UnixMilli(), ImageURI: "second", Title: "Night walk"}
	for _, e := range []*diary.Entry{first, second} {
		if err := p.Store(ctx, e); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	now := func() time.Time { return time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	m := Month{
		Month:       calendar.Date{Year: 2025, Month: time.February, Day: 1},
		Open:        calendar.Date{Year: 2025, Month: time.February, Day: 14},
		Now:         now,
		Out:         &buf,
		Persistence: p,
	}
	if err := m.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, "Wednesday, March 5") || !strings.Contains(got, "February 2025") {
		t.Fatalf("expected header and month label:\n%s", got)
	}
	// The later entry of the day wins.
	if !strings.Contains(got, "Night walk") || strings.Contains(got, "Breakfast") {
		t.Fatalf("expected the later entry to open:\n%s", got)
	}

	buf.Reset()
	m.Open = calendar.Date{Year: 2025, Month: time.February, Day: 15}
	if err := m.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "no entry on 2025.02.15") {
		t.Fatalf("expected no entry message:\n%s", buf.String())
	}
}
