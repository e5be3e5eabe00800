package generate_slots

import (
	"fmt"
	"time"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// generateSessionSlots enumerates the slots of one session window.
// Slots step from the window start with a fixed duration and stay fully
// inside [start, end): a trailing partial slot is truncated, never padded.
// Slot ids derive from the session tag and start time, so regeneration
// for the same window is idempotent and selections survive re-renders.
func generateSessionSlots(win domain.SessionWindow, durationMinutes, capacity int) ([]domain.BookingSlot, error) {
	slots := make([]domain.BookingSlot, 0)
	current := win.Start

	for current.IsBefore(win.End) {
		slotEnd, err := current.AddMinutes(durationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if slotEnd.IsAfter(win.End) {
			break
		}

		slots = append(slots, domain.BookingSlot{
			ID:        fmt.Sprintf("%s-%s", win.Session.Tag(), current),
			StartTime: current,
			EndTime:   slotEnd,
			Available: capacity,
			Session:   win.Session,
		})

		current = slotEnd
	}

	return slots, nil
}

// generateDays builds the bookable day window: visibleDays consecutive
// days starting tomorrow, each carrying the total free spots of a day's
// slot set.
func generateDays(now time.Time, visibleDays, availablePerDay int) []domain.BookingDay {
	days := make([]domain.BookingDay, 0, visibleDays)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)

	for i := 0; i < visibleDays; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, domain.BookingDay{
			ID:             fmt.Sprintf("d-%s", date.Format(domain.DateFormat)),
			Date:           date,
			AvailableCount: availablePerDay,
		})
	}

	return days
}
