package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeFormat layout for wall-clock times (HH:MM)
const TimeFormat = "15:04"

// ErrInvalidTimeString is returned for malformed time values
var ErrInvalidTimeString = errors.New("types: invalid time string format")

// TimeString wall-clock time of day in "HH:MM" format.
// Carries no date or timezone component, so comparisons are purely lexical
// over minutes-of-day.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true for the empty value
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the raw "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// minutes converts the value to minutes since midnight
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.minutes()
	if err != nil {
		return false
	}
	b, err := other.minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// AddMinutes returns the time m minutes later, still within the same day
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	cur, err := t.minutes()
	if err != nil {
		return "", err
	}
	total := cur + m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is outside the day", ErrInvalidTimeString, string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
