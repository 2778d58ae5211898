// Package dates provides local-calendar date helpers for the neoflow app.
// All dates are handled as local calendar days in YYYY-MM-DD form; UTC-aware
// parsing would shift days across timezones, so it is deliberately avoided.
package dates

import (
	"fmt"
	"time"
)

// Layout is the canonical date format used across all data files.
const Layout = "2006-01-02"

// Parse parses a YYYY-MM-DD string as a local calendar day.
// Malformed input is a caller contract violation and returns an error.
func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// Format renders t as YYYY-MM-DD in t's own location.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// WeekdayIndex returns the day of week for t, 0 = Sunday .. 6 = Saturday.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysInMonth returns every day of the month containing anchor, first
// through last inclusive.
func DaysInMonth(anchor time.Time) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	var days []time.Time
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
