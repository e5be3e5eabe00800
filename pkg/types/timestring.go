package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString wall-clock time of day in "HH:MM" form.
// Used for slot arithmetic where only minutes-since-midnight matter.
type TimeString string

// NewTimeString builds a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString validates and wraps an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid time string %q: %w", s, err)
	}
	return NewTimeString(t), nil
}

// MustTimeString wraps an "HH:MM" string, panicking on malformed input.
// Intended for package-level constants and tests.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func (ts TimeString) String() string {
	return string(ts)
}

// Minutes returns minutes since midnight
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time string %q: %w", string(ts), err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns the time shifted forward by m minutes.
// Fails if the result crosses midnight; sessions never do.
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := ts.Minutes()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total > 24*60 {
		return "", fmt.Errorf("types: time %s%+dm out of day range", ts, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether ts is strictly earlier than other
func (ts TimeString) IsBefore(other TimeString) bool {
	return string(ts) < string(other)
}

// IsAfter reports whether ts is strictly later than other
func (ts TimeString) IsAfter(other TimeString) bool {
	return string(ts) > string(other)
}
