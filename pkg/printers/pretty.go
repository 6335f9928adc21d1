package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
)

// PrettyPrint writes human readable diary output. Out defaults to
// color.Output.
type PrettyPrint struct {
	Out    io.Writer
	Locale calendar.Locale
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints a table of entries.
func (pp *PrettyPrint) Entries(entries ...*diary.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Emotion"), bold.Sprint("Title"), bold.Sprint("Image"))
	for _, e := range entries {
		if e == nil {
			continue
		}
		tbl.AddRow(y.Sprint(e.ID), dateOf(e), EmotionColor(e.Emotion).Sprint(e.Emotion.Label()), e.Label(), e.ImageURI)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints a single entry in full.
func (pp *PrettyPrint) Entry(e *diary.Entry) {
	if e == nil {
		return
	}
	faint := color.New(color.Faint)

	pp.Title(e.Label())
	meta := []string{}
	if d, err := e.Date(); err == nil {
		meta = append(meta, calendar.HeaderLabel(d, pp.Locale))
	} else {
		meta = append(meta, "unknown date")
	}
	if e.Emotion != "" {
		meta = append(meta, EmotionColor(e.Emotion).Sprint(e.Emotion.Label()))
	}
	_, _ = fmt.Fprintln(pp.out(), strings.Join(meta, " · "))
	if content := strings.TrimSpace(e.Content); content != "" {
		pp.NewLine()
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(content, 80))
	}
	pp.NewLine()
	_, _ = faint.Fprintf(pp.out(), "#%d  %s\n", e.ID, e.ImageURI)
}

func dateOf(e *diary.Entry) string {
	d, err := e.Date()
	if err != nil {
		return "?"
	}
	return calendar.CardLabel(d)
}

// EmotionColor picks the terminal color for an emotion.
func EmotionColor(e diary.Emotion) *color.Color {
	switch e {
	case diary.EmotionHappy:
		return color.New(color.FgHiYellow)
	case diary.EmotionCalm:
		return color.New(color.FgHiCyan)
	case diary.EmotionExcited:
		return color.New(color.FgHiMagenta)
	case diary.EmotionSad:
		return color.New(color.FgBlue)
	case diary.EmotionAngry:
		return color.New(color.FgRed)
	case diary.EmotionAnxious:
		return color.New(color.FgYellow)
	case diary.EmotionTired:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgWhite)
	}
}
