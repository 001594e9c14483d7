package utils

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfISOWeek returns the Monday midnight starting t's ISO week.
func StartOfISOWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// StartOfYear returns January 1st midnight of t's year in t's location.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

// ValidateVisitDate checks a submitted yyyy-MM-dd calendar date string.
func ValidateVisitDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date %q, expected yyyy-MM-dd", s)
	}
	return nil
}

// ValidateClock checks a submitted HH:mm local clock string.
func ValidateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time %q, expected HH:mm", s)
	}
	return nil
}
