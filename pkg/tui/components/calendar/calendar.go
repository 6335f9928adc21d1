// Package calendar renders the home screen's horizontal month strip.
package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss/v2"

	cal "tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/dateindex"
	"tableflip.dev/oneframe/pkg/navigation"
	"tableflip.dev/oneframe/pkg/tui/theme"
)

const (
	cellWidth = 5
	dot       = "•"
)

// Day describes a single day rendered in the strip.
type Day struct {
	Date       cal.Date
	HasEntry   bool
	IsToday    bool
	IsSelected bool
	IsCursor   bool
}

// Model is the month strip: navigation state plus a day cursor.
type Model struct {
	state   navigation.State
	index   dateindex.Index
	cursor  cal.Date
	today   cal.Date
	locale  cal.Locale
	width   int
	focused bool
	styles  theme.CalendarTheme
}

// New starts the strip on now's month with the cursor on today.
func New(now time.Time, locale cal.Locale, styler theme.Styler) *Model {
	state := navigation.New(now)
	return &Model{
		state:  state,
		index:  dateindex.Index{},
		cursor: state.SelectedDate,
		today:  state.SelectedDate,
		locale: locale,
		width:  80,
		styles: styler.Theme().Calendar,
	}
}

// SetIndex replaces the date index used for entry dots and selection.
func (m *Model) SetIndex(idx dateindex.Index) {
	if idx == nil {
		idx = dateindex.Index{}
	}
	m.index = idx
}

// SetWidth sets the available columns.
func (m *Model) SetWidth(w int) { m.width = w }

// SetFocused toggles cursor highlighting.
func (m *Model) SetFocused(f bool) { m.focused = f }

// State returns the navigation state.
func (m *Model) State() navigation.State { return m.state }

// Cursor returns the date under the cursor.
func (m *Model) Cursor() cal.Date { return m.cursor }

// Move shifts the cursor by delta days, following it into adjacent months.
func (m *Model) Move(delta int) {
	next := m.cursor.AddDays(delta)
	if next.Year < 1 || next.Year > 9999 {
		return
	}
	m.cursor = next
	for !m.cursor.SameMonth(m.state.CurrentMonth) {
		if m.cursor.Before(m.state.CurrentMonth) {
			m.state.PrevMonth()
		} else {
			m.state.NextMonth()
		}
	}
}

// PrevMonth shows the previous month, keeping the cursor's day where it fits.
func (m *Model) PrevMonth() {
	if m.state.PrevMonth() {
		m.clampCursor()
	}
}

// NextMonth shows the next month, keeping the cursor's day where it fits.
func (m *Model) NextMonth() {
	if m.state.NextMonth() {
		m.clampCursor()
	}
}

func (m *Model) clampCursor() {
	month := m.state.CurrentMonth
	day := m.cursor.Day
	if last := cal.DaysIn(month.Year, month.Month); day > last {
		day = last
	}
	m.cursor = cal.Date{Year: month.Year, Month: month.Month, Day: day}
}

// Select opens the entry under the cursor through r.
func (m *Model) Select(r navigation.Router) bool {
	return m.state.Select(m.cursor, m.index, r)
}

// Days describes every day of the current month.
func (m *Model) Days() []Day {
	dates := m.state.Days()
	days := make([]Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, Day{
			Date:       d,
			HasEntry:   m.index.Has(d),
			IsToday:    d == m.today,
			IsSelected: m.state.IsSelected(d),
			IsCursor:   d == m.cursor,
		})
	}
	return days
}

// View renders the header and the visible window of day cells.
func (m *Model) View() string {
	header := strings.Join([]string{
		m.styles.Chevron.Render("‹"),
		m.styles.Label.Render(m.state.HeaderLabel(m.locale)),
		m.styles.Chevron.Render("›"),
		"  " + m.styles.Month.Render(cal.MonthLabel(m.state.CurrentMonth, m.locale)),
	}, " ")

	days := m.visible(m.Days())
	var numbers, weekdays, dots []string
	for _, d := range days {
		style := m.dayStyle(d)
		numbers = append(numbers, style.Render(center(fmt.Sprintf("%d", d.Date.Day), cellWidth)))
		weekdays = append(weekdays, m.styles.Weekday.Render(center(cal.ShortWeekday(d.Date), cellWidth)))
		mark := ""
		if d.HasEntry {
			mark = dot
		}
		dots = append(dots, m.styles.Dot.Render(center(mark, cellWidth)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(numbers, ""),
		strings.Join(weekdays, ""),
		strings.Join(dots, ""),
	)
}

func (m *Model) visible(days []Day) []Day {
	count := m.width / cellWidth
	if count < 1 {
		count = 1
	}
	if count >= len(days) {
		return days
	}
	cursor := 0
	for i, d := range days {
		if d.IsCursor {
			cursor = i
			break
		}
	}
	start := cursor - count/2
	if start < 0 {
		start = 0
	}
	if start+count > len(days) {
		start = len(days) - count
	}
	return days[start : start+count]
}

func (m *Model) dayStyle(d Day) lipgloss.Style {
	style := m.styles.Day
	if d.HasEntry {
		style = m.styles.Entry
	}
	if d.IsToday {
		style = style.Inherit(m.styles.Today)
	}
	if d.IsSelected {
		style = style.Inherit(m.styles.Selected)
	}
	if d.IsCursor && m.focused {
		style = m.styles.Cursor.Inherit(style)
	}
	return style
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
