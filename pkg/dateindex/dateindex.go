// Package dateindex maps calendar dates to the diary entry recorded that day.
package dateindex

import (
	"sort"

	"github.com/rs/zerolog"

	"tableflip.dev/oneframe/pkg/calendar"
	"tableflip.dev/oneframe/pkg/diary"
)

// Index is a lookup from calendar date to entry id. It is rebuilt wholesale
// whenever the entry list changes and must not be mutated once published.
type Index map[calendar.Date]int64

// Option configures Build.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger reports skipped entries to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// Build indexes entries in the order given. When two entries fall on the same
// date the later one replaces the earlier id. Entries whose timestamp cannot
// be converted to a date are skipped.
func Build(entries []*diary.Entry, opts ...Option) Index {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	idx := make(Index, len(entries))
	for _, e := range entries {
		if e == nil {
			continue
		}
		date, err := e.Date()
		if err != nil {
			o.log.Warn().
				Err(err).
				Int64("id", e.ID).
				Int64("createdAt", e.CreatedAt).
				Msg("skipping entry with unusable timestamp")
			continue
		}
		if prev, ok := idx[date]; ok && prev != e.ID {
			o.log.Debug().
				Str("date", date.String()).
				Int64("replaced", prev).
				Int64("id", e.ID).
				Msg("date already indexed, keeping later entry")
		}
		idx[date] = e.ID
	}
	return idx
}

// Lookup returns the entry id recorded on date.
func (idx Index) Lookup(date calendar.Date) (int64, bool) {
	id, ok := idx[date]
	return id, ok
}

// Has reports whether an entry exists for date.
func (idx Index) Has(date calendar.Date) bool {
	_, ok := idx[date]
	return ok
}

// Len returns the number of indexed dates.
func (idx Index) Len() int {
	return len(idx)
}

// Dates returns the indexed dates in ascending order.
func (idx Index) Dates() []calendar.Date {
	dates := make([]calendar.Date, 0, len(idx))
	for d := range idx {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// InMonth returns the day numbers of month that have an entry.
func (idx Index) InMonth(month calendar.Date) map[int]bool {
	days := make(map[int]bool)
	for d := range idx {
		if d.SameMonth(month) {
			days[d.Day] = true
		}
	}
	return days
}
