package carousel

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/navigation"
	"tableflip.dev/oneframe/pkg/tui/theme"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func entries(n int) []*diary.Entry {
	out := make([]*diary.Entry, 0, n)
	for i := 1; i <= n; i++ {
		e := diary.New(time.Date(2025, time.March, i, 9, 0, 0, 0, time.UTC), "content://media/"+string(rune('0'+i)), diary.EmotionCalm)
		e.ID = int64(i)
		e.Title = "Day " + string(rune('0'+i))
		out = append(out, e)
	}
	return out
}

func TestMoveClamps(t *testing.T) {
	m := New(theme.Default())
	m.Move(1)
	if m.Cursor() != 0 {
		t.Fatalf("expected cursor 0 when empty, got %d", m.Cursor())
	}
	m.SetEntries(entries(3))
	m.Move(-1)
	if m.Cursor() != 0 {
		t.Fatalf("expected clamp at start, got %d", m.Cursor())
	}
	m.Move(10)
	if m.Cursor() != 2 {
		t.Fatalf("expected clamp at end, got %d", m.Cursor())
	}
}

func TestSetEntriesKeepsSelection(t *testing.T) {
	m := New(theme.Default())
	m.SetEntries(entries(3))
	m.Move(1)
	all := entries(4)
	m.SetEntries([]*diary.Entry{all[3], all[0], all[1], all[2]})
	e, ok := m.Selected()
	if !ok || e.ID != 2 {
		t.Fatalf("expected entry 2 to stay selected, got %v", e)
	}
	m.SetEntries(entries(1))
	if e, _ := m.Selected(); e.ID != 1 {
		t.Fatalf("expected fallback to first card, got %v", e)
	}
}

func TestOpenNavigatesToSelected(t *testing.T) {
	m := New(theme.Default())
	var got navigation.Target
	r := navigation.RouterFunc(func(t navigation.Target) { got = t })
	if m.Open(r) {
		t.Fatalf("expected no navigation without entries")
	}
	m.SetEntries(entries(2))
	m.Move(1)
	if !m.Open(r) || got != (navigation.DiaryDetail{ID: 2}) {
		t.Fatalf("expected navigation to diary/2, got %v", got)
	}
}

func TestViewShowsCards(t *testing.T) {
	m := New(theme.Default())
	if view := stripANSI(m.View()); !strings.Contains(view, "No diary entries") {
		t.Fatalf("expected empty placeholder, got %q", view)
	}
	m.SetEntries(entries(5))
	m.SetWidth(CardWidth*2 + 1)
	m.Move(4)
	view := stripANSI(m.View())
	if !strings.Contains(view, "2025.03.05") || !strings.Contains(view, "Day 5") {
		t.Fatalf("expected focused card in view:\n%s", view)
	}
	if strings.Contains(view, "Day 1") {
		t.Fatalf("expected the first card to scroll out of view:\n%s", view)
	}
	if !strings.Contains(view, "5/5") {
		t.Fatalf("expected position indicator:\n%s", view)
	}
}
