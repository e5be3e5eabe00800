package models

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// DemographicsUpdate carries the demographic form values of a save request.
// Nil fields are left unchanged.
type DemographicsUpdate struct {
	FullName        *string
	DateOfBirth     *string
	Age             *string
	Gender          *string
	ResidenceStatus *string
	Address         *string
	Region          *string
	Parish          *string
	City            *string
	Zone            *string
	PostalCode      *string
	Phone           *string
	Email           *string
}

// SelectionUpdate is one booking selection change. Nil fields are ignored;
// the service applies session, then day, then slot, then applicant.
type SelectionUpdate struct {
	Session           *string
	DayIndex          *int
	SlotID            *string
	ApplicantID       *string
	ToggleApplicantID *string
}

// DocumentView one upload slot as shown to the UI
type DocumentView struct {
	Key      string
	Title    string
	Required bool
	DocType  string
	FileName string
	HasFile  bool
}

// SlotView one bookable slot as shown to the UI
type SlotView struct {
	ID        string
	StartTime string
	EndTime   string
	Available int
	Session   string
}

// DayView one bookable day as shown to the UI
type DayView struct {
	ID             string
	Date           string
	AvailableCount int
}

// ApplicantView one applicant row of the slot-selection screen
type ApplicantView struct {
	ID       string
	Name     string
	Expanded bool
	Selected bool
}

// BookingView the booking step state: day window, active session, the
// slots filtered to that session, and the current selections
type BookingView struct {
	Days                []DayView
	Session             string
	DayIndex            int
	Slots               []SlotView
	SelectedSlotID      string
	SelectedApplicantID string
	Applicants          []ApplicantView
	CanContinue         bool
}

// WizardView is the full wizard state projection returned to the UI
type WizardView struct {
	Step           int
	StepName       string
	UploadPreview  bool
	SelectingSlots bool

	Demographics domain.Demographics
	Languages    []string

	Documents    []DocumentView
	PreviewKind  string
	PreviewTitle string

	Booking *BookingView

	Confirmed     bool
	ApplicationID string
}

// FromDomainWizard projects wizard state into the UI view
func FromDomainWizard(w *domain.WizardState) *WizardView {
	view := &WizardView{
		Step:           int(w.Step),
		StepName:       w.Step.String(),
		UploadPreview:  w.UploadPreview,
		SelectingSlots: w.SelectingSlots,
		Demographics:   w.Demographics,
		Languages:      append([]string(nil), w.DataCaptureLanguages...),
		PreviewKind:    string(w.PreviewKind),
		PreviewTitle:   w.PreviewTitle,
		Confirmed:      w.Confirmed,
		ApplicationID:  w.ApplicationID,
	}

	for _, d := range w.Documents {
		view.Documents = append(view.Documents, DocumentView{
			Key:      d.Key,
			Title:    d.Title,
			Required: d.Required,
			DocType:  d.DocType,
			FileName: d.FileName,
			HasFile:  d.HasFile(),
		})
	}

	if w.HasBookingData() {
		view.Booking = fromDomainBooking(w)
	}

	return view
}

func fromDomainBooking(w *domain.WizardState) *BookingView {
	b := &BookingView{
		Session:             string(w.SelectedSession),
		DayIndex:            w.SelectedDayIndex,
		SelectedSlotID:      w.SelectedSlotID,
		SelectedApplicantID: w.SelectedApplicantID,
		CanContinue:         w.CanContinueBooking(),
	}

	for _, d := range w.Days {
		b.Days = append(b.Days, DayView{
			ID:             d.ID,
			Date:           d.Date.Format(domain.DateFormat),
			AvailableCount: d.AvailableCount,
		})
	}

	for _, s := range w.FilteredSlots() {
		b.Slots = append(b.Slots, SlotView{
			ID:        s.ID,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
			Session:   string(s.Session),
		})
	}

	for _, a := range w.Applicants {
		b.Applicants = append(b.Applicants, ApplicantView{
			ID:       a.ID,
			Name:     a.Name,
			Expanded: a.Expanded,
			Selected: a.ID == w.SelectedApplicantID,
		})
	}

	return b
}
