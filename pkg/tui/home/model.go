// Package home is the Bubble Tea home screen: recent entries, the month
// strip and the emotion chart, with a detail pane for a single entry.
package home

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/help"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/calendar"
	ctrl "tableflip.dev/oneframe/pkg/home"
	"tableflip.dev/oneframe/pkg/navigation"
	calstrip "tableflip.dev/oneframe/pkg/tui/components/calendar"
	"tableflip.dev/oneframe/pkg/tui/components/carousel"
	"tableflip.dev/oneframe/pkg/tui/components/chart"
	"tableflip.dev/oneframe/pkg/tui/theme"
)

type focus int

const (
	focusCarousel focus = iota
	focusCalendar
)

type snapshotMsg struct {
	snap ctrl.Snapshot
	ok   bool
}

type reloadedMsg struct {
	err error
}

// Option configures the home screen.
type Option func(*Model)

// WithLocale sets the date label locale.
func WithLocale(l calendar.Locale) Option {
	return func(m *Model) { m.locale = l }
}

// WithStyler overrides the default theme.
func WithStyler(s theme.Styler) Option {
	return func(m *Model) { m.styler = s }
}

// WithClock overrides time.Now for the calendar's starting month.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithLogger sets the screen's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// Model is the home screen. It is also the navigation.Router for its
// components.
type Model struct {
	ctx         context.Context
	controller  *ctrl.Controller
	updates     <-chan ctrl.Snapshot
	unsubscribe func()
	snap        ctrl.Snapshot

	locale calendar.Locale
	styler theme.Styler
	now    func() time.Time
	log    zerolog.Logger

	carousel *carousel.Model
	calendar *calstrip.Model
	focus    focus
	detail   *detailPane

	keys   keyMap
	help   help.Model
	status string

	width  int
	height int
}

var _ navigation.Router = (*Model)(nil)

// New builds the home screen on top of c. The screen subscribes to c
// immediately; call Close when done.
func New(ctx context.Context, c *ctrl.Controller, opts ...Option) *Model {
	m := &Model{
		ctx:        ctx,
		controller: c,
		locale:     calendar.LocaleEnglish,
		styler:     theme.Default(),
		now:        time.Now,
		log:        zerolog.Nop(),
		keys:       defaultKeys(),
		help:       help.New(),
		width:      80,
		height:     24,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.updates, m.unsubscribe = c.Subscribe()
	m.snap = c.Snapshot()
	m.carousel = carousel.New(m.styler)
	m.calendar = calstrip.New(m.now(), m.locale, m.styler)
	m.applyFocus()
	m.layout()
	return m
}

// Run launches the Bubble Tea program for the home screen.
func Run(ctx context.Context, c *ctrl.Controller, opts ...Option) error {
	m := New(ctx, c, opts...)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Close releases the controller subscription.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func waitForSnapshot(ch <-chan ctrl.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		return snapshotMsg{snap: snap, ok: ok}
	}
}

func (m *Model) reload() tea.Cmd {
	c, ctx := m.controller, m.ctx
	return func() tea.Msg {
		return reloadedMsg{err: c.Load(ctx)}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.layout()
		return m, nil
	case snapshotMsg:
		if !v.ok {
			return m, nil
		}
		m.applySnapshot(v.snap)
		return m, waitForSnapshot(m.updates)
	case reloadedMsg:
		if v.err != nil {
			m.status = "Reload failed: " + v.err.Error()
		} else {
			m.status = "Reloaded"
		}
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(v)
	}

	if m.detail != nil {
		vp, cmd := m.detail.viewport.Update(msg)
		m.detail.viewport = vp
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.detail != nil {
		switch {
		case key.Matches(msg, m.keys.Close):
			m.detail = nil
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		vp, cmd := m.detail.viewport.Update(msg)
		m.detail.viewport = vp
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusCarousel {
			m.focus = focusCalendar
		} else {
			m.focus = focusCarousel
		}
		m.applyFocus()
	case key.Matches(msg, m.keys.Left):
		m.move(-1)
	case key.Matches(msg, m.keys.Right):
		m.move(1)
	case key.Matches(msg, m.keys.PrevMonth):
		m.calendar.PrevMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.calendar.NextMonth()
	case key.Matches(msg, m.keys.Open):
		m.open()
	case key.Matches(msg, m.keys.Reload):
		m.status = "Reloading…"
		return m, m.reload()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	switch m.focus {
	case focusCalendar:
		m.calendar.Move(delta)
	default:
		m.carousel.Move(delta)
	}
}

func (m *Model) open() {
	m.status = ""
	switch m.focus {
	case focusCalendar:
		if !m.calendar.Select(m) {
			m.status = "No entry on " + calendar.CardLabel(m.calendar.Cursor())
		}
	default:
		m.carousel.Open(m)
	}
}

// Navigate implements navigation.Router by opening the detail pane.
func (m *Model) Navigate(t navigation.Target) {
	m.log.Debug().Str("target", t.String()).Msg("navigate")
	switch target := t.(type) {
	case navigation.DiaryDetail:
		e, ok := m.snap.Entry(target.ID)
		if !ok {
			m.status = fmt.Sprintf("Entry %d is no longer available", target.ID)
			return
		}
		w, h := m.detailSize()
		m.detail = newDetailPane(e, m.locale, w, h)
	}
}

func (m *Model) applySnapshot(snap ctrl.Snapshot) {
	m.snap = snap
	m.carousel.SetEntries(snap.Entries)
	m.calendar.SetIndex(snap.Index)
	if m.detail != nil {
		if e, ok := snap.Entry(m.detail.entry.ID); ok {
			w, _ := m.detailSize()
			m.detail.refresh(e, w)
		} else {
			m.detail = nil
			m.status = "Entry was removed"
		}
	}
}

func (m *Model) applyFocus() {
	m.carousel.SetFocused(m.focus == focusCarousel)
	m.calendar.SetFocused(m.focus == focusCalendar)
}

func (m *Model) footerRows() int {
	if m.help.ShowAll {
		return 5
	}
	return 2
}

func (m *Model) detailSize() (int, int) {
	frame := m.styler.Theme().Detail.Frame
	w := m.width - frame.GetHorizontalFrameSize()
	h := m.height - m.footerRows() - frame.GetVerticalFrameSize()
	return max(w, 1), max(h, 1)
}

func (m *Model) layout() {
	m.carousel.SetWidth(m.width)
	m.calendar.SetWidth(m.width)
	if m.detail != nil {
		w, h := m.detailSize()
		m.detail.setSize(w, h)
	}
}

// View implements tea.ViewModel.
func (m *Model) View() string {
	footer := lipgloss.JoinVertical(lipgloss.Left, m.statusLine(), m.helpLine())
	if m.detail != nil {
		frame := m.styler.Theme().Detail.Frame
		return lipgloss.JoinVertical(lipgloss.Left, frame.Render(m.detail.viewport.View()), footer)
	}

	t := m.styler.Theme()
	title := func(text string, focused bool) string {
		if focused {
			return t.Header.Focused.Render(text)
		}
		return t.Header.Title.Render(text)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title("Recent", m.focus == focusCarousel),
		m.carousel.View(),
		"",
		title("Calendar", m.focus == focusCalendar),
		m.calendar.View(),
		"",
		title("Emotions", false),
		chart.Render(m.snap.Emotions, m.width, m.styler),
		"",
		footer,
	)
	return body
}

func (m *Model) statusLine() string {
	t := m.styler.Theme().Footer
	switch {
	case m.snap.Status == ctrl.StatusFailed:
		msg := "Could not load diary"
		if m.snap.Err != nil {
			msg += ": " + m.snap.Err.Error()
		}
		return t.Error.Render(msg)
	case m.status != "":
		return t.Status.Render(m.status)
	case m.snap.Status == ctrl.StatusIdle:
		return t.Status.Render("Loading…")
	default:
		return t.Status.Render(fmt.Sprintf("%d entries · updated %s",
			len(m.snap.Entries), m.snap.LoadedAt.Local().Format("15:04")))
	}
}

func (m *Model) helpLine() string {
	return m.styler.Theme().Footer.Help.Render(m.help.View(m.keys))
}
