// Package emotion summarises diary entries into per-emotion counts for the
// distribution chart.
package emotion

import (
	"tableflip.dev/oneframe/pkg/diary"
)

// Summary is one slice of the emotion chart.
type Summary struct {
	Emotion diary.Emotion `json:"emotion"`
	Count   int           `json:"count"`
	Percent float64       `json:"percent"`
}

// Aggregate counts entries per emotion. Known emotions come first in their
// canonical order, followed by unknown emotions in the order first seen.
// Emotions without entries are omitted and entries without an emotion are
// not counted. The result is never nil.
func Aggregate(entries []*diary.Entry) []Summary {
	counts := make(map[diary.Emotion]int)
	var unknown []diary.Emotion
	total := 0
	for _, e := range entries {
		if e == nil || e.Emotion == "" {
			continue
		}
		if _, seen := counts[e.Emotion]; !seen && !e.Emotion.Known() {
			unknown = append(unknown, e.Emotion)
		}
		counts[e.Emotion]++
		total++
	}

	out := make([]Summary, 0, len(counts))
	if total == 0 {
		return out
	}
	order := append(diary.AllEmotions(), unknown...)
	for _, em := range order {
		n := counts[em]
		if n == 0 {
			continue
		}
		out = append(out, Summary{
			Emotion: em,
			Count:   n,
			Percent: float64(n) / float64(total) * 100,
		})
	}
	return out
}

// Total returns the number of entries represented by summaries.
func Total(summaries []Summary) int {
	total := 0
	for _, s := range summaries {
		total += s.Count
	}
	return total
}

// Dominant returns the most frequent emotion. Ties go to the emotion listed
// first.
func Dominant(summaries []Summary) (Summary, bool) {
	var best Summary
	found := false
	for _, s := range summaries {
		if !found || s.Count > best.Count {
			best = s
			found = true
		}
	}
	return best, found
}
