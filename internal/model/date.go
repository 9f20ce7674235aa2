package model

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-date key used everywhere a log or streak refers
// to a day. Keys carry no timezone; they are local calendar dates.
const DayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD key into a midnight time value.
func ParseDay(key string) (time.Time, error) {
	day, err := time.Parse(DayLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("model: invalid day key %q: %w", key, err)
	}
	return day, nil
}

// FormatDay renders a time value as its calendar-date key.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}

// IsValidDay reports whether key parses as a calendar-date key.
func IsValidDay(key string) bool {
	_, err := ParseDay(key)
	return err == nil
}

// AddDays shifts a day key by delta calendar days. The key must be valid.
func AddDays(key string, delta int) (string, error) {
	day, err := ParseDay(key)
	if err != nil {
		return "", err
	}
	return FormatDay(day.AddDate(0, 0, delta)), nil
}

// DaysBetween returns b - a in whole calendar days.
func DaysBetween(a, b string) (int, error) {
	first, err := ParseDay(a)
	if err != nil {
		return 0, err
	}
	second, err := ParseDay(b)
	if err != nil {
		return 0, err
	}
	return int(second.Sub(first).Hours() / 24), nil
}
