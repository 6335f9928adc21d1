// Package chart draws the emotion distribution as horizontal bars.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/oneframe/pkg/emotion"
	"tableflip.dev/oneframe/pkg/tui/theme"
)

const (
	// Placeholder is shown when no entry carries an emotion.
	Placeholder = "No emotions recorded yet."

	bar       = "█"
	labelCols = 9
	// label, space, bar, space, "100% (n)"
	reserved = labelCols + 2 + 12
)

// Render draws one bar per summary, scaled so the largest fills the width.
func Render(summaries []emotion.Summary, width int, styler theme.Styler) string {
	styles := styler.Theme().Chart
	if len(summaries) == 0 {
		return styles.Placeholder.Render(Placeholder)
	}

	barCols := width - reserved
	if barCols < 4 {
		barCols = 4
	}
	maxCount := 0
	for _, s := range summaries {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}

	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		n := 0
		if maxCount > 0 {
			n = int(math.Round(float64(s.Count) / float64(maxCount) * float64(barCols)))
		}
		if n < 1 && s.Count > 0 {
			n = 1
		}
		color := styler.EmotionColor(s.Emotion)
		label := styles.Label.Foreground(color).Render(pad(s.Emotion.Label(), labelCols))
		fill := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat(bar, n))
		percent := styles.Percent.Render(fmt.Sprintf("%3.0f%% (%d)", s.Percent, s.Count))
		lines = append(lines, label+" "+fill+strings.Repeat(" ", barCols-n)+" "+percent)
	}
	return strings.Join(lines, "\n")
}

// pad fits s into exactly width display columns.
func pad(s string, width int) string {
	if lipgloss.Width(s) > width {
		s = truncate.String(s, uint(width))
	}
	return s + strings.Repeat(" ", width-lipgloss.Width(s))
}
