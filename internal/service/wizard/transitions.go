package wizard

import (
	"fmt"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// applyTransition mutates w according to the wizard transition table.
// Any (state, action) pair outside the table returns
// ErrTransitionNotAllowed and leaves w untouched. Transitions are atomic
// state replacements: either the whole pair of fields changes or nothing.
//
//	Demographic          --advance-->                    Upload(editing)
//	Upload(editing)      --openPreview-->                Upload(previewing)
//	Upload(previewing)   --backToEdit-->                 Upload(editing)
//	Upload(previewing)   --continue-->                   Booking(browsing)
//	Booking(browsing)    --continue-->                   Booking(selectingSlots)
//	Booking(selectingSlots) --continueAfterSlotSelection--> Confirmation   [both selections set]
//	Booking(selectingSlots) --back-->                    Booking(browsing)
//	Booking(browsing)    --back-->                       Upload(editing)
//	Upload               --back-->                       Demographic / Upload(editing)
//	any later step       --editDemographic-->            Demographic
//
// Confirmation is terminal; goToDashboard is handled by the service as a
// wizard exit, not a table transition.
func applyTransition(w *domain.WizardState, action domain.WizardAction) error {
	switch action {
	case domain.ActionAdvance:
		if w.Step == domain.StepDemographic {
			w.Step = domain.StepUpload
			w.UploadPreview = false
			return nil
		}

	case domain.ActionOpenPreview:
		if w.Step == domain.StepUpload && !w.UploadPreview {
			w.UploadPreview = true
			return nil
		}

	case domain.ActionBackToEdit:
		if w.Step == domain.StepUpload && w.UploadPreview {
			w.UploadPreview = false
			return nil
		}

	case domain.ActionContinue:
		if w.Step == domain.StepUpload && w.UploadPreview {
			w.Step = domain.StepBooking
			w.UploadPreview = false
			w.SelectingSlots = false
			return nil
		}
		if w.Step == domain.StepBooking && !w.SelectingSlots {
			w.SelectingSlots = true
			return nil
		}

	case domain.ActionContinueAfterSlotSelection:
		if w.Step == domain.StepBooking && w.SelectingSlots {
			if !w.CanContinueBooking() {
				return ErrBookingIncomplete
			}
			w.Step = domain.StepConfirmation
			w.SelectingSlots = false
			return nil
		}

	case domain.ActionBack:
		// Backward navigation always reaches the immediately preceding state
		switch {
		case w.Step == domain.StepUpload && w.UploadPreview:
			w.UploadPreview = false
			return nil
		case w.Step == domain.StepUpload:
			w.Step = domain.StepDemographic
			return nil
		case w.Step == domain.StepBooking && w.SelectingSlots:
			w.SelectingSlots = false
			return nil
		case w.Step == domain.StepBooking:
			w.Step = domain.StepUpload
			w.UploadPreview = false
			return nil
		}

	case domain.ActionEditDemographic:
		// Re-entering demographic resets the preview sub-mode but keeps
		// every captured field value and the booking selections.
		if w.Step > domain.StepDemographic {
			w.Step = domain.StepDemographic
			w.UploadPreview = false
			w.SelectingSlots = false
			return nil
		}

	case domain.ActionGoToDashboard:
		// handled by Service.Transition, never reaches the table
		return ErrTransitionNotAllowed

	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	return ErrTransitionNotAllowed
}
