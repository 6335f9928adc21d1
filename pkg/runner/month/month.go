// Package month prints the calendar strip for a month and optionally opens
// the entry recorded on a day.
package month

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/home"
	"tableflip.dev/oneframe/pkg/navigation"
	"tableflip.dev/oneframe/pkg/printers"
	"tableflip.dev/oneframe/pkg/runner/show"
	"tableflip.dev/oneframe/pkg/store"
)

type Month struct {
	// Month to show; zero means the current month.
	Month calendar.Date
	// Open, when set, opens the entry recorded on that day.
	Open calendar.Date

	Locale      calendar.Locale
	Now         func() time.Time
	Out         io.Writer
	Log         zerolog.Logger
	Persistence store.Persistence
}

func (m *Month) Do(ctx context.Context) error {
	if m.Persistence == nil {
		return errors.New("can not show calendar, no persistence")
	}
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	out := m.Out
	if out == nil {
		out = color.Output
	}

	c := home.New(m.Persistence, home.WithLogger(m.Log))
	if err := c.Load(ctx); err != nil {
		return err
	}
	snap := c.Snapshot()

	state := navigation.New(now())
	if !m.Month.IsZero() {
		state.CurrentMonth = m.Month.FirstOfMonth()
	}

	pp := printers.PrettyPrint{Out: out, Locale: m.Locale}
	pp.Month(state, snap.Index, calendar.Of(now()))

	if m.Open.IsZero() {
		return nil
	}
	var target navigation.Target
	if !state.Select(m.Open, snap.Index, navigation.RouterFunc(func(t navigation.Target) { target = t })) {
		_, _ = color.New(color.Faint, color.Italic).Fprintf(out, "no entry on %s\n", calendar.CardLabel(m.Open))
		return nil
	}
	s, ok := show.For(target, show.Show{Locale: m.Locale, Out: out, Persistence: m.Persistence})
	if !ok {
		return fmt.Errorf("can not open %s", target)
	}
	return s.Do(ctx)
}
