// Package carousel renders diary entries as a horizontal row of cards.
package carousel

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
	"tableflip.dev/oneframe/pkg/navigation"
	"tableflip.dev/oneframe/pkg/tui/theme"
)

const (
	// CardWidth is the outer width of a card including its border.
	CardWidth = 26
	gap       = 1
	ellipsis  = "…"
)

// Model holds the entries and the focused card.
type Model struct {
	entries []*diary.Entry
	cursor  int
	width   int
	focused bool
	styles  theme.CardTheme
	styler  theme.Styler
}

// New creates an empty carousel.
func New(styler theme.Styler) *Model {
	return &Model{
		width:  80,
		styles: styler.Theme().Card,
		styler: styler,
	}
}

// SetEntries replaces the cards, keeping the cursor on the same entry when
// it is still present.
func (m *Model) SetEntries(entries []*diary.Entry) {
	var keep int64
	if e, ok := m.Selected(); ok {
		keep = e.ID
	}
	m.entries = entries
	m.cursor = 0
	for i, e := range entries {
		if e != nil && e.ID == keep {
			m.cursor = i
			break
		}
	}
}

// Len returns the number of cards.
func (m *Model) Len() int { return len(m.entries) }

// SetWidth sets the available columns.
func (m *Model) SetWidth(w int) { m.width = w }

// SetFocused toggles the active card highlight.
func (m *Model) SetFocused(f bool) { m.focused = f }

// Cursor returns the index of the focused card.
func (m *Model) Cursor() int { return m.cursor }

// Move shifts the cursor by delta, stopping at either end.
func (m *Model) Move(delta int) {
	if len(m.entries) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
}

// Selected returns the focused entry.
func (m *Model) Selected() (*diary.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) || m.entries[m.cursor] == nil {
		return nil, false
	}
	return m.entries[m.cursor], true
}

// Open navigates to the focused entry.
func (m *Model) Open(r navigation.Router) bool {
	e, ok := m.Selected()
	if !ok || r == nil {
		return false
	}
	r.Navigate(navigation.DiaryDetail{ID: e.ID})
	return true
}

// View renders the window of cards around the cursor.
func (m *Model) View() string {
	if len(m.entries) == 0 {
		return m.styles.Empty.Render("No diary entries yet. Add one with `oneframe add`.")
	}

	count := (m.width + gap) / (CardWidth + gap)
	if count < 1 {
		count = 1
	}
	start := 0
	if len(m.entries) > count {
		start = m.cursor - count/2
		if start < 0 {
			start = 0
		}
		if start+count > len(m.entries) {
			start = len(m.entries) - count
		}
	}
	end := start + count
	if end > len(m.entries) {
		end = len(m.entries)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i > start {
			cards = append(cards, " ")
		}
		cards = append(cards, m.card(m.entries[i], i == m.cursor))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	position := m.styles.Overflow.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.entries)))
	return lipgloss.JoinVertical(lipgloss.Left, row, position)
}

func (m *Model) card(e *diary.Entry, active bool) string {
	inner := CardWidth - m.styles.Frame.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	clip := func(s string) string {
		return truncate.StringWithTail(s, uint(inner), ellipsis)
	}

	if e == nil {
		return m.styles.Frame.Width(CardWidth).Render("")
	}

	dateText := "unknown date"
	if d, err := e.Date(); err == nil {
		dateText = calendar.CardLabel(d)
	}
	emotionText := ""
	if e.Emotion != "" {
		emotionText = lipgloss.NewStyle().
			Foreground(m.styler.EmotionColor(e.Emotion)).
			Render(clip(e.Emotion.Label()))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Date.Render(clip(dateText)),
		m.styles.Title.Render(clip(e.Label())),
		emotionText,
		m.styles.Image.Render(clip(e.ImageURI)),
	)

	frame := m.styles.Frame
	if active && m.focused {
		frame = m.styles.Active
	}
	return frame.Width(CardWidth).Render(body)
}
