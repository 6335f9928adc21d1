package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Locale selects how dates are labelled for display.
type Locale string

const (
	// LocaleEnglish renders "Wednesday, March 5".
	LocaleEnglish Locale = "en"
	// LocaleKorean renders "3월 5일 수요일".
	LocaleKorean Locale = "ko"
)

// ParseLocale maps a configuration value onto a Locale, defaulting to English.
func ParseLocale(raw string) (Locale, error) {
	switch l := Locale(strings.ToLower(strings.TrimSpace(raw))); l {
	case "":
		return LocaleEnglish, nil
	case LocaleEnglish, LocaleKorean:
		return l, nil
	}
	return LocaleEnglish, fmt.Errorf("calendar: unknown locale %q", raw)
}

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// HeaderLabel formats d for the calendar header.
func HeaderLabel(d Date, locale Locale) string {
	if d.IsZero() {
		return ""
	}
	switch locale {
	case LocaleKorean:
		return fmt.Sprintf("%d월 %d일 %s요일", int(d.Month), d.Day, koreanWeekdays[d.Weekday()])
	default:
		return d.Time(time.UTC).Format("Monday, January 2")
	}
}

// MonthLabel formats the month of d, e.g. "March 2025" or "2025년 3월".
func MonthLabel(d Date, locale Locale) string {
	switch locale {
	case LocaleKorean:
		return fmt.Sprintf("%d년 %d월", d.Year, int(d.Month))
	default:
		return d.Time(time.UTC).Format("January 2006")
	}
}

// ShortWeekday returns the upper-case three letter weekday name, e.g. "WED".
func ShortWeekday(d Date) string {
	return strings.ToUpper(d.Weekday().String()[:3])
}

// CardLabel is the compact date printed on carousel cards.
func CardLabel(d Date) string {
	return fmt.Sprintf("%04d.%02d.%02d", d.Year, int(d.Month), d.Day)
}
