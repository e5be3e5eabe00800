package generate_slots

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// Request describes one slot generation run: the session windows to
// enumerate and the bookable day window to surface.
type Request struct {
	Sessions        []domain.SessionWindow
	DurationMinutes int // fixed slot length
	Capacity        int // default per-slot capacity
	VisibleDays     int // exactly this many days are surfaced
}

// Response is the generated booking data for one wizard run
type Response struct {
	Days  []domain.BookingDay
	Slots []domain.BookingSlot
}
