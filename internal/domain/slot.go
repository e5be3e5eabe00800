package domain

import (
	"time"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/types"
)

// Session is a coarse time-of-day partition used to filter bookable slots
type Session string

const (
	SessionMorning   Session = "morning"
	SessionAfternoon Session = "afternoon"
)

// IsValid reports whether the session value is one of the known partitions
func (s Session) IsValid() bool {
	return s == SessionMorning || s == SessionAfternoon
}

// Tag returns the short prefix used in slot identifiers ("m-09:00")
func (s Session) Tag() string {
	if s == SessionAfternoon {
		return "a"
	}
	return "m"
}

// SessionWindow half-open working window [Start, End) for one session
type SessionWindow struct {
	Session Session
	Start   types.TimeString
	End     types.TimeString
}

// BookingSlot represents a fixed-duration bookable time interval
type BookingSlot struct {
	ID        string
	StartTime types.TimeString
	EndTime   types.TimeString
	Available int
	Session   Session
}

// IsFull returns true if the slot has no available spots
func (s *BookingSlot) IsFull() bool {
	return s.Available <= 0
}

// BookingDay represents one bookable calendar day in the visible window
type BookingDay struct {
	ID             string
	Date           time.Time
	AvailableCount int
}
