package generate_slots

import (
	"fmt"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// validateRequest validates a generation request
func validateRequest(req *Request) error {
	if len(req.Sessions) == 0 {
		return fmt.Errorf("%w: at least one session window is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinSlotDurationMinutes || req.DurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: duration %d minutes out of range [%d, %d]",
			ErrInvalidDuration, req.DurationMinutes, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if req.Capacity < domain.MinSlotCapacity || req.Capacity > domain.MaxSlotCapacity {
		return fmt.Errorf("%w: capacity %d out of range [%d, %d]",
			ErrInvalidInput, req.Capacity, domain.MinSlotCapacity, domain.MaxSlotCapacity)
	}

	if req.VisibleDays <= 0 || req.VisibleDays > domain.MaxVisibleDays {
		return fmt.Errorf("%w: visibleDays %d out of range (0, %d]",
			ErrInvalidInput, req.VisibleDays, domain.MaxVisibleDays)
	}

	for _, win := range req.Sessions {
		if !win.Session.IsValid() {
			return fmt.Errorf("%w: unknown session %q", ErrInvalidInput, win.Session)
		}
		if !win.Start.IsBefore(win.End) {
			return fmt.Errorf("%w: session %s window [%s, %s)", ErrInvalidWindow, win.Session, win.Start, win.End)
		}
	}

	return nil
}
