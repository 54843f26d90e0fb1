// Package clock resolves arbitrary instants to canonical day identities.
// A day is identified by its calendar date truncated to midnight UTC; two
// instants on the same date always map to the same DateKey.
package clock

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// DateKey is the canonical identity of a calendar day. Keys are ISO dates
// (YYYY-MM-DD), so lexicographic order matches chronological order and keys
// compare directly with <= for "created on or before" checks.
type DateKey string

// InvalidDateError is returned when an input date string cannot be parsed.
type InvalidDateError struct {
	Input string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q", e.Input)
}

// DayOf truncates an instant to its day identity.
func DayOf(t time.Time) DateKey {
	return DateKey(t.UTC().Format(dayFormat))
}

// Parse accepts an ISO date or a full RFC 3339 timestamp and resolves it to
// a DateKey. Anything else fails with InvalidDateError.
func Parse(s string) (DateKey, error) {
	for _, layout := range []string{dayFormat, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return DayOf(t), nil
		}
	}
	return "", &InvalidDateError{Input: s}
}

// Time returns the midnight instant the key identifies.
func (d DateKey) Time() time.Time {
	t, _ := time.Parse(dayFormat, string(d))
	return t
}

// Weekday returns the day-of-week index, 0=Sunday through 6=Saturday.
func (d DateKey) Weekday() int {
	return int(d.Time().Weekday())
}
