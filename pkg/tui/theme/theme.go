package theme

import (
	"hash/fnv"
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/oneframe/pkg/diary"
)

// Styler supplies the styles used by the home screen components.
type Styler interface {
	Theme() Theme
	EmotionColor(e diary.Emotion) color.Color
}

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Card     CardTheme
	Calendar CalendarTheme
	Chart    ChartTheme
	Detail   DetailTheme
	Footer   FooterTheme
}

// HeaderTheme styles section titles.
type HeaderTheme struct {
	Title   lipgloss.Style
	Focused lipgloss.Style
}

// CardTheme styles carousel cards.
type CardTheme struct {
	Frame    lipgloss.Style
	Active   lipgloss.Style
	Date     lipgloss.Style
	Title    lipgloss.Style
	Image    lipgloss.Style
	Empty    lipgloss.Style
	Overflow lipgloss.Style
}

// CalendarTheme styles the month strip.
type CalendarTheme struct {
	Label    lipgloss.Style
	Month    lipgloss.Style
	Chevron  lipgloss.Style
	Day      lipgloss.Style
	Weekday  lipgloss.Style
	Entry    lipgloss.Style
	Dot      lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// ChartTheme styles the emotion chart.
type ChartTheme struct {
	Label       lipgloss.Style
	Percent     lipgloss.Style
	Placeholder lipgloss.Style
}

// DetailTheme styles the entry detail pane.
type DetailTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

type defaultStyler struct {
	theme Theme
}

// Default returns the built-in styler used across the UI.
func Default() Styler {
	return defaultStyler{theme: defaultTheme()}
}

func (d defaultStyler) Theme() Theme { return d.theme }

func (d defaultStyler) EmotionColor(e diary.Emotion) color.Color {
	return EmotionColor(e)
}

func defaultTheme() Theme {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
			Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		},
		Card: CardTheme{
			Frame:    card,
			Active:   card.BorderForeground(lipgloss.Color("212")),
			Date:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
			Title:    lipgloss.NewStyle().Bold(true),
			Image:    faint.Italic(true),
			Empty:    faint.Italic(true),
			Overflow: faint,
		},
		Calendar: CalendarTheme{
			Label:    lipgloss.NewStyle().Bold(true),
			Month:    faint,
			Chevron:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Weekday:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Dot:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Cursor:   lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Chart: ChartTheme{
			Label:       lipgloss.NewStyle(),
			Percent:     faint,
			Placeholder: faint.Italic(true),
		},
		Detail: DetailTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}

// EmotionColor spreads the known emotions evenly around the hue wheel and
// hashes anything else onto it.
func EmotionColor(e diary.Emotion) colorful.Color {
	known := diary.AllEmotions()
	var hue float64
	if rank := e.Rank(); rank >= 0 {
		hue = float64(rank) * 360 / float64(len(known))
	} else {
		h := fnv.New32a()
		_, _ = h.Write([]byte(e))
		hue = float64(h.Sum32() % 360)
	}
	return colorful.Hsv(hue, 0.55, 0.92)
}
