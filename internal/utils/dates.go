package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format exchanged with the document store
// and used everywhere in the domain.
const DateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd string into a midnight time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd: %w", dateStr, err)
	}
	return t, nil
}

// FormatDate renders a time as a yyyy-mm-dd calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current calendar date with time-of-day zeroed.
func Today() time.Time {
	return Midnight(time.Now())
}

// Midnight truncates a time to its calendar date.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts a yyyy-mm-dd date by n days.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// DateInRange reports whether date falls inside [start, end], inclusive on
// both ends. All three are yyyy-mm-dd strings, so lexicographic comparison is
// exact.
func DateInRange(date, start, end string) bool {
	return date >= start && date <= end
}

// SameMonth reports whether two dates share calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthsBetween counts whole calendar months from a to b by (year, month)
// difference, ignoring the day-of-month. A rental in the previous calendar
// month is 1 month back regardless of the dates involved.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
