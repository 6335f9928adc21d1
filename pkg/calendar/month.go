package calendar

import "time"

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return Date{Year: d.Year, Month: d.Month, Day: DaysIn(d.Year, d.Month)}
}

// MonthRange returns every date of d's month from the 1st through the last
// day, ascending.
func MonthRange(d Date) []Date {
	n := DaysIn(d.Year, d.Month)
	days := make([]Date, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, Date{Year: d.Year, Month: d.Month, Day: day})
	}
	return days
}
