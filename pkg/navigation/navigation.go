// Package navigation holds the home screen's calendar state and the routes it
// can open.
package navigation

import (
	"fmt"
	"time"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/dateindex"
)

// Target is a destination a Router can open.
type Target interface {
	target()
	fmt.Stringer
}

// DiaryDetail opens a single diary entry.
type DiaryDetail struct {
	ID int64
}

func (DiaryDetail) target() {}

// String implements fmt.Stringer.
func (d DiaryDetail) String() string {
	return fmt.Sprintf("diary/%d", d.ID)
}

// Router opens targets. Navigation is fire-and-forget.
type Router interface {
	Navigate(Target)
}

// RouterFunc adapts a function to Router.
type RouterFunc func(Target)

// Navigate implements Router.
func (f RouterFunc) Navigate(t Target) { f(t) }

// State is the month being shown and the date highlighted in the header.
type State struct {
	CurrentMonth calendar.Date
	SelectedDate calendar.Date
}

// New starts on now's month with now's date selected.
func New(now time.Time) State {
	today := calendar.Of(now)
	return State{
		CurrentMonth: today.FirstOfMonth(),
		SelectedDate: today,
	}
}

// PrevMonth moves the calendar back one month. It stops at
// calendar.FirstMonth and reports whether the month changed.
func (s *State) PrevMonth() bool {
	if !s.CurrentMonth.After(calendar.FirstMonth) {
		return false
	}
	s.CurrentMonth = s.CurrentMonth.AddMonths(-1)
	return true
}

// NextMonth moves the calendar forward one month. It stops at
// calendar.LastMonth and reports whether the month changed.
func (s *State) NextMonth() bool {
	if !s.CurrentMonth.FirstOfMonth().Before(calendar.LastMonth) {
		return false
	}
	s.CurrentMonth = s.CurrentMonth.AddMonths(1)
	return true
}

// Days returns every date of the current month.
func (s State) Days() []calendar.Date {
	return calendar.MonthRange(s.CurrentMonth)
}

// Select opens the entry recorded on date, if any, and reports whether a
// navigation happened. Days without an entry are ignored. Selection does not
// change the current month or the selected date.
func (s State) Select(date calendar.Date, idx dateindex.Index, r Router) bool {
	id, ok := idx.Lookup(date)
	if !ok || r == nil {
		return false
	}
	r.Navigate(DiaryDetail{ID: id})
	return true
}

// IsSelected reports whether date is the highlighted header date.
func (s State) IsSelected(date calendar.Date) bool {
	return s.SelectedDate == date
}

// HeaderLabel formats the selected date for the calendar header.
func (s State) HeaderLabel(locale calendar.Locale) string {
	return calendar.HeaderLabel(s.SelectedDate, locale)
}
