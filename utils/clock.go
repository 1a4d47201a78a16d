package utils

import (
	"fmt"
	"time"
)

// MinutesPerDay is the upper bound for a stored time offset.
const MinutesPerDay = 24 * 60

// DateLayout is the calendar-date format used throughout the service.
const DateLayout = "2006-01-02"

// clockLayout matches wall-clock times like "09:30".
const clockLayout = "15:04"

// ParseClock converts an "HH:MM" string into minutes from midnight.
func ParseClock(value string) (int, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time format for %q, expected HH:MM: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight back into "HH:MM".
// An offset of MinutesPerDay formats as "24:00" so a full-day range stays readable.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format for %q, expected YYYY-MM-DD: %w", value, err)
	}
	return d, nil
}

// FormatDate renders a calendar date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
