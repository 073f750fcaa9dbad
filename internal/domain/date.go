package domain

import (
	"strings"
	"time"
)

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses "YYYY-MM-DD" into a UTC date
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// WeekStart returns the Monday of the week containing the date
func WeekStart(date time.Time) time.Time {
	d := DateOnly(date)
	return d.AddDate(0, 0, -DayIndex(d))
}

// WeekEnd returns the Sunday of the week containing the date
func WeekEnd(date time.Time) time.Time {
	return WeekStart(date).AddDate(0, 0, 6)
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
