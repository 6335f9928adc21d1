package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
)

// detailPane shows a single entry in a scrollable viewport.
type detailPane struct {
	entry    *diary.Entry
	viewport viewport.Model
	locale   calendar.Locale
}

func newDetailPane(e *diary.Entry, locale calendar.Locale, width, height int) *detailPane {
	d := &detailPane{
		entry: e,
		viewport: viewport.New(
			viewport.WithWidth(max(width, 1)),
			viewport.WithHeight(max(height, 1)),
		),
		locale: locale,
	}
	d.render(width)
	return d
}

// refresh swaps in a newer copy of the entry, keeping the scroll position.
func (d *detailPane) refresh(e *diary.Entry, width int) {
	if *e == *d.entry {
		d.entry = e
		return
	}
	d.entry = e
	d.render(width)
}

func (d *detailPane) setSize(width, height int) {
	d.viewport.SetWidth(max(width, 1))
	d.viewport.SetHeight(max(height, 1))
	d.render(width)
}

func (d *detailPane) render(width int) {
	wrap := max(width, 20)
	md := entryMarkdown(d.entry, d.locale)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		var out string
		if out, err = renderer.Render(md); err == nil {
			d.viewport.SetContent(out)
			return
		}
	}
	d.viewport.SetContent(wordwrap.String(md, wrap))
}

func entryMarkdown(e *diary.Entry, locale calendar.Locale) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Label())

	var meta []string
	if d, err := e.Date(); err == nil {
		meta = append(meta, calendar.HeaderLabel(d, locale))
	}
	if e.Emotion != "" {
		meta = append(meta, e.Emotion.Label())
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, "*%s*\n\n", strings.Join(meta, " · "))
	}
	if content := strings.TrimSpace(e.Content); content != "" {
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "Photo: `%s`\n", e.ImageURI)
	return b.String()
}
