package update_booking_selection

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

// UpdateSelectionRequest HTTP request model. Omitted fields are ignored;
// the service applies session, then day, then slot, then applicant.
type UpdateSelectionRequest struct {
	Session           *string `json:"session,omitempty"`
	DayIndex          *int    `json:"dayIndex,omitempty"`
	SlotID            *string `json:"slotId,omitempty"`
	ApplicantID       *string `json:"applicantId,omitempty"`
	ToggleApplicantID *string `json:"toggleApplicantId,omitempty"`
}

// ToServiceUpdate converts the HTTP request into the service model
func (r *UpdateSelectionRequest) ToServiceUpdate() *models.SelectionUpdate {
	return &models.SelectionUpdate{
		Session:           r.Session,
		DayIndex:          r.DayIndex,
		SlotID:            r.SlotID,
		ApplicantID:       r.ApplicantID,
		ToggleApplicantID: r.ToggleApplicantID,
	}
}
