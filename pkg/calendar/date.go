// Package calendar provides day-granularity dates derived from diary
// timestamps and the month arithmetic used by the home screen.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// MillisPerDay is the number of milliseconds in one epoch day.
const MillisPerDay int64 = 24 * 60 * 60 * 1000

const (
	layoutISO   = "2006-01-02"
	layoutMonth = "2006-01"

	minYear = 1
	maxYear = 9999
)

// ErrOutOfRange is returned when a timestamp cannot be represented as a Date.
var ErrOutOfRange = errors.New("calendar: date out of range")

// FirstMonth and LastMonth are the first days of the earliest and latest
// months a Date may fall in.
var (
	FirstMonth = Date{Year: minYear, Month: time.January, Day: 1}
	LastMonth  = Date{Year: maxYear, Month: time.December, Day: 1}
)

// Date is a civil year-month-day value with no time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New builds a Date, normalizing overflowing months and days the same way
// time.Date does.
func New(year int, month time.Month, day int) Date {
	return Of(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Of returns the date of t in t's own location.
func Of(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// FromEpochDay converts a day count since 1970-01-01 into a Date.
func FromEpochDay(day int64) (Date, error) {
	// Keep the multiplication below inside int64.
	const limit = 4_000_000
	if day < -limit || day > limit {
		return Date{}, fmt.Errorf("%w: epoch day %d", ErrOutOfRange, day)
	}
	d := Of(time.Unix(day*86400, 0).UTC())
	if d.Year < minYear || d.Year > maxYear {
		return Date{}, fmt.Errorf("%w: epoch day %d", ErrOutOfRange, day)
	}
	return d, nil
}

// FromEpochMillis converts a millisecond timestamp into the Date of its epoch
// day. Days are counted with floor division so timestamps before 1970 land on
// the preceding day rather than rounding toward the epoch.
func FromEpochMillis(ms int64) (Date, error) {
	return FromEpochDay(floorDiv(ms, MillisPerDay))
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Parse reads a Date in 2006-01-02 form.
func Parse(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Of(t), nil
}

// ParseMonth reads a month in 2006-01 form and returns its first day.
func ParseMonth(v string) (Date, error) {
	t, err := time.Parse(layoutMonth, v)
	if err != nil {
		return Date{}, err
	}
	return Of(t), nil
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// EpochDay returns the number of days between 1970-01-01 and d.
func (d Date) EpochDay() int64 {
	return d.Time(time.UTC).Unix() / 86400
}

// EpochMillis returns the first millisecond of d in UTC.
func (d Date) EpochMillis() int64 {
	return d.EpochDay() * MillisPerDay
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// AddDays returns d moved by n days.
func (d Date) AddDays(n int) Date {
	return Of(d.Time(time.UTC).AddDate(0, 0, n))
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// AddMonths returns the first day of the month n months away from d's month.
func (d Date) AddMonths(n int) Date {
	return New(d.Year, d.Month+time.Month(n), 1)
}

// SameMonth reports whether both dates fall in the same year and month.
func (d Date) SameMonth(other Date) bool {
	return d.Year == other.Year && d.Month == other.Month
}

// String renders the date as 2006-01-02.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MonthString renders the year and month as 2006-01.
func (d Date) MonthString() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// MarshalText implements encoding.TextMarshaler so dates can key JSON maps.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
