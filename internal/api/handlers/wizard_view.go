package handlers

import (
	wizardModels "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

// WizardStateResponse is the HTTP projection of the wizard state,
// shared by every wizard-scoped handler.
type WizardStateResponse struct {
	Step           int    `json:"step"`
	StepName       string `json:"stepName"`
	UploadPreview  bool   `json:"uploadPreview"`
	SelectingSlots bool   `json:"selectingSlots"`

	Demographics DemographicsPayload `json:"demographics"`
	Languages    []string            `json:"languages"`

	Documents    []DocumentPayload `json:"documents"`
	PreviewKind  string            `json:"previewKind"`
	PreviewTitle string            `json:"previewTitle,omitempty"`

	Booking *BookingPayload `json:"booking,omitempty"`

	Confirmed     bool   `json:"confirmed"`
	ApplicationID string `json:"applicationId,omitempty"`
}

// DemographicsPayload demographic form values
type DemographicsPayload struct {
	FullName        string `json:"fullName"`
	DateOfBirth     string `json:"dateOfBirth"`
	Age             string `json:"age"`
	Gender          string `json:"gender"`
	ResidenceStatus string `json:"residenceStatus"`
	Address         string `json:"address"`
	Region          string `json:"region"`
	Parish          string `json:"parish"`
	City            string `json:"city"`
	Zone            string `json:"zone"`
	PostalCode      string `json:"postalCode"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
}

// DocumentPayload one upload slot
type DocumentPayload struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Required bool   `json:"required"`
	DocType  string `json:"docType,omitempty"`
	FileName string `json:"fileName,omitempty"`
	HasFile  bool   `json:"hasFile"`
}

// BookingPayload booking step state
type BookingPayload struct {
	Days                []DayPayload       `json:"days"`
	Session             string             `json:"session"`
	DayIndex            int                `json:"dayIndex"`
	Slots               []SlotPayload      `json:"slots"`
	SelectedSlotID      string             `json:"selectedSlotId,omitempty"`
	SelectedApplicantID string             `json:"selectedApplicantId,omitempty"`
	Applicants          []ApplicantPayload `json:"applicants"`
	CanContinue         bool               `json:"canContinue"`
}

// DayPayload one bookable day
type DayPayload struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	AvailableCount int    `json:"availableCount"`
}

// SlotPayload one bookable slot
type SlotPayload struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available int    `json:"available"`
	Session   string `json:"session"`
}

// ApplicantPayload one applicant row
type ApplicantPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Expanded bool   `json:"expanded"`
	Selected bool   `json:"selected"`
}

// FromWizardView converts the service view into the HTTP payload
func FromWizardView(v *wizardModels.WizardView) *WizardStateResponse {
	resp := &WizardStateResponse{
		Step:           v.Step,
		StepName:       v.StepName,
		UploadPreview:  v.UploadPreview,
		SelectingSlots: v.SelectingSlots,
		Demographics: DemographicsPayload{
			FullName:        v.Demographics.FullName,
			DateOfBirth:     v.Demographics.DateOfBirth,
			Age:             v.Demographics.Age,
			Gender:          v.Demographics.Gender,
			ResidenceStatus: v.Demographics.ResidenceStatus,
			Address:         v.Demographics.Address,
			Region:          v.Demographics.Region,
			Parish:          v.Demographics.Parish,
			City:            v.Demographics.City,
			Zone:            v.Demographics.Zone,
			PostalCode:      v.Demographics.PostalCode,
			Phone:           v.Demographics.Phone,
			Email:           v.Demographics.Email,
		},
		Languages:     v.Languages,
		PreviewKind:   v.PreviewKind,
		PreviewTitle:  v.PreviewTitle,
		Confirmed:     v.Confirmed,
		ApplicationID: v.ApplicationID,
	}

	for _, d := range v.Documents {
		resp.Documents = append(resp.Documents, DocumentPayload{
			Key:      d.Key,
			Title:    d.Title,
			Required: d.Required,
			DocType:  d.DocType,
			FileName: d.FileName,
			HasFile:  d.HasFile,
		})
	}

	if v.Booking != nil {
		b := &BookingPayload{
			Session:             v.Booking.Session,
			DayIndex:            v.Booking.DayIndex,
			SelectedSlotID:      v.Booking.SelectedSlotID,
			SelectedApplicantID: v.Booking.SelectedApplicantID,
			CanContinue:         v.Booking.CanContinue,
		}
		for _, d := range v.Booking.Days {
			b.Days = append(b.Days, DayPayload{ID: d.ID, Date: d.Date, AvailableCount: d.AvailableCount})
		}
		for _, s := range v.Booking.Slots {
			b.Slots = append(b.Slots, SlotPayload{
				ID:        s.ID,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Available: s.Available,
				Session:   s.Session,
			})
		}
		for _, a := range v.Booking.Applicants {
			b.Applicants = append(b.Applicants, ApplicantPayload{
				ID:       a.ID,
				Name:     a.Name,
				Expanded: a.Expanded,
				Selected: a.Selected,
			})
		}
		resp.Booking = b
	}

	return resp
}
