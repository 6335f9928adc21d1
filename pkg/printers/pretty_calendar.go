package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/dateindex"
	"tableflip.dev/oneframe/pkg/emotion"
	"tableflip.dev/oneframe/pkg/navigation"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the header label followed by a week grid of the current
// month. Days with an entry are bold, today is underlined.
func (pp *PrettyPrint) Month(state navigation.State, idx dateindex.Index, today calendar.Date) {
	out := pp.out()

	_, _ = color.New(color.Bold).Fprintln(out, state.HeaderLabel(pp.Locale))

	tf := color.New(color.FgWhite, color.Italic)
	m := calendar.MonthLabel(state.CurrentMonth, pp.Locale)
	mid := (width - len([]rune(m))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)

	faint := color.New(color.Faint)
	_, _ = faint.Fprintln(out, "Su Mo Tu We Th Fr Sa")

	days := state.Days()
	if len(days) == 0 {
		return
	}

	// Pad out the start of the month.
	d := days[0].Weekday()
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for _, day := range days {
		printer := l1
		if idx.Has(day) {
			printer = l2
		}
		if day == today {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(out, "%2d", day.Day)
		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		} else {
			_, _ = fmt.Fprint(out, " ")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(out, "\n")
	}

	marked := idx.InMonth(state.CurrentMonth)
	_, _ = faint.Fprintf(out, "\n%d of %d days recorded\n\n", len(marked), len(days))
}

// Emotions prints one bar per emotion, scaled to barWidth for the largest.
func (pp *PrettyPrint) Emotions(summaries []emotion.Summary, barWidth int) {
	out := pp.out()
	if len(summaries) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(out, " no emotions recorded\n\n")
		return
	}
	if barWidth < 1 {
		barWidth = 1
	}
	maxCount := 0
	for _, s := range summaries {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	faint := color.New(color.Faint)
	for _, s := range summaries {
		n := s.Count * barWidth / maxCount
		if n < 1 {
			n = 1
		}
		c := EmotionColor(s.Emotion)
		_, _ = c.Fprintf(out, "%-9s ", s.Emotion.Label())
		_, _ = c.Fprint(out, strings.Repeat("█", n))
		_, _ = faint.Fprintf(out, "%s %5.1f%% (%d)\n", strings.Repeat(" ", barWidth-n), s.Percent, s.Count)
	}
	if dom, ok := emotion.Dominant(summaries); ok {
		_, _ = faint.Fprintf(out, "\nmostly %s across %d entries\n", dom.Emotion, emotion.Total(summaries))
	}
	pp.NewLine()
}
