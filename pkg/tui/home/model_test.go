package home

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
	ctrl "tableflip.dev/oneframe/pkg/home"
	"tableflip.dev/oneframe/pkg/navigation"
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

type staticReader struct {
	entries []*diary.Entry
	err     error
}

func (r staticReader) ReadAll(context.Context) ([]*diary.Entry, error) {
	return r.entries, r.err
}

var today = time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

func fixtures() []*diary.Entry {
	return []*diary.Entry{
		{ID: 1, CreatedAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC).UnixMilli(), ImageURI: "content://media/1", Emotion: diary.EmotionHappy, Title: "Pancakes", Content: "Breakfast with friends."},
		{ID: 2, CreatedAt: time.Date(2025, time.March, 6, 9, 0, 0, 0, time.UTC).UnixMilli(), ImageURI: "content://media/2", Emotion: diary.EmotionTired, Title: "Long shift"},
	}
}

func newLoadedModel(t *testing.T, r ctrl.Reader) *Model {
	t.Helper()
	c := ctrl.New(r)
	_ = c.Load(context.Background())
	m := New(context.Background(), c, WithClock(func() time.Time { return today }), WithLocale(calendar.LocaleEnglish))
	t.Cleanup(m.Close)
	m.Update(m.Init()())
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func press(m *Model, keys ...tea.KeyPressMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

var (
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keyRight = tea.KeyPressMsg{Code: tea.KeyRight}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEsc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func TestViewShowsSections(t *testing.T) {
	m := newLoadedModel(t, staticReader{entries: fixtures()})
	view := stripANSI(m.View())
	for _, want := range []string{"Recent", "Pancakes", "Calendar", "Wednesday, March 5", "Emotions", "Happy", "50% (1)", "2 entries"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestCarouselEnterOpensDetail(t *testing.T) {
	m := newLoadedModel(t, staticReader{entries: fixtures()})
	press(m, keyEnter)
	if m.detail == nil || m.detail.entry.ID != 1 {
		t.Fatalf("expected detail for entry 1, got %+v", m.detail)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Pancakes") || !strings.Contains(view, "Breakfast with friends.") {
		t.Fatalf("expected entry content in detail view:\n%s", view)
	}
	press(m, keyEsc)
	if m.detail != nil {
		t.Fatalf("expected esc to close the detail pane")
	}
}

func TestReloadKeepsDetailScroll(t *testing.T) {
	long := func(prefix string) *diary.Entry {
		var paragraphs []string
		for i := 1; i <= 80; i++ {
			paragraphs = append(paragraphs, fmt.Sprintf("%s paragraph %02d", prefix, i))
		}
		return &diary.Entry{
			ID:        1,
			CreatedAt: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC).UnixMilli(),
			ImageURI:  "content://media/1",
			Emotion:   diary.EmotionCalm,
			Title:     "Harbour walk",
			Content:   strings.Join(paragraphs, "\n\n"),
		}
	}
	reloaded := func(e *diary.Entry) ctrl.Snapshot {
		c := ctrl.New(staticReader{entries: []*diary.Entry{e}})
		if err := c.Load(context.Background()); err != nil {
			t.Fatalf("load: %v", err)
		}
		return c.Snapshot()
	}

	m := newLoadedModel(t, staticReader{entries: []*diary.Entry{long("Walked")}})
	press(m, keyEnter)
	if m.detail == nil {
		t.Fatalf("expected the detail pane to open")
	}
	pane := func() string { return stripANSI(m.detail.viewport.View()) }
	top := pane()
	if !strings.Contains(top, "Harbour walk") {
		t.Fatalf("expected the title at the top:\n%s", top)
	}
	pgDown := tea.KeyPressMsg{Code: tea.KeyPgDown}
	press(m, pgDown, pgDown)
	scrolled := pane()
	if scrolled == top || strings.Contains(scrolled, "Harbour walk") {
		t.Fatalf("expected the pane to scroll past the title:\n%s", scrolled)
	}

	m.Update(snapshotMsg{snap: reloaded(long("Walked")), ok: true})
	if got := pane(); got != scrolled {
		t.Fatalf("expected an unchanged reload to keep the scroll position:\n%s", got)
	}

	m.Update(snapshotMsg{snap: reloaded(long("Strolled")), ok: true})
	got := pane()
	if strings.Contains(got, "Harbour walk") || !strings.Contains(got, "Strolled paragraph") {
		t.Fatalf("expected an edited entry to re-render in place:\n%s", got)
	}
}

func TestCalendarSelectOnlyOpensDaysWithEntries(t *testing.T) {
	m := newLoadedModel(t, staticReader{entries: fixtures()})
	press(m, keyTab, keyEnter)
	if m.detail != nil {
		t.Fatalf("expected no detail for March 5")
	}
	if !strings.Contains(m.status, "2025.03.05") {
		t.Fatalf("expected a no-entry status, got %q", m.status)
	}
	press(m, keyRight, keyEnter)
	if m.detail == nil || m.detail.entry.ID != 2 {
		t.Fatalf("expected detail for entry 2, got %+v", m.detail)
	}
	if m.calendar.State().SelectedDate != calendar.Of(today) {
		t.Fatalf("selection must not move the header date")
	}
}

func TestMonthKeysMoveCalendar(t *testing.T) {
	m := newLoadedModel(t, staticReader{entries: fixtures()})
	start := m.calendar.State().CurrentMonth
	press(m, tea.KeyPressMsg{Text: "[", Code: '['}, tea.KeyPressMsg{Text: "]", Code: ']'})
	if m.calendar.State().CurrentMonth != start {
		t.Fatalf("expected prev then next to return to %s, got %s", start, m.calendar.State().CurrentMonth)
	}
	press(m, tea.KeyPressMsg{Text: "]", Code: ']'})
	if got := m.calendar.State().CurrentMonth; got != (calendar.Date{Year: 2025, Month: time.April, Day: 1}) {
		t.Fatalf("expected April, got %s", got)
	}
}

func TestNavigateUnknownEntry(t *testing.T) {
	m := newLoadedModel(t, staticReader{entries: fixtures()})
	m.Navigate(navigation.DiaryDetail{ID: 99})
	if m.detail != nil || !strings.Contains(m.status, "99") {
		t.Fatalf("expected a status message for a missing entry, got %q", m.status)
	}
}

func TestFailedLoadShowsError(t *testing.T) {
	m := newLoadedModel(t, staticReader{err: errors.New("permission denied")})
	view := stripANSI(m.View())
	if !strings.Contains(view, "Could not load diary: permission denied") {
		t.Fatalf("expected load error in view:\n%s", view)
	}
	if !strings.Contains(view, "No diary entries yet") {
		t.Fatalf("expected empty carousel:\n%s", view)
	}
}

func TestQuitKey(t *testing.T) {
	m := newLoadedModel(t, staticReader{})
	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
