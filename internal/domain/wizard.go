package domain

import "time"

// WizardStep is the ordered step index of the pre-registration wizard
type WizardStep int

const (
	StepDemographic WizardStep = iota
	StepUpload
	StepBooking
	StepConfirmation
)

// String returns the step name used in API payloads and logs
func (s WizardStep) String() string {
	switch s {
	case StepDemographic:
		return "demographic"
	case StepUpload:
		return "upload"
	case StepBooking:
		return "booking"
	case StepConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// WizardAction is a transition request against the wizard state machine
type WizardAction string

const (
	ActionAdvance                    WizardAction = "advance"
	ActionBack                       WizardAction = "back"
	ActionOpenPreview                WizardAction = "openPreview"
	ActionBackToEdit                 WizardAction = "backToEdit"
	ActionContinue                   WizardAction = "continue"
	ActionContinueAfterSlotSelection WizardAction = "continueAfterSlotSelection"
	ActionGoToDashboard              WizardAction = "goToDashboard"
	ActionEditDemographic            WizardAction = "editDemographic"
)

// KnownActions lists every action the state machine understands
var KnownActions = []WizardAction{
	ActionAdvance,
	ActionBack,
	ActionOpenPreview,
	ActionBackToEdit,
	ActionContinue,
	ActionContinueAfterSlotSelection,
	ActionGoToDashboard,
	ActionEditDemographic,
}

// Demographics holds the captured demographic form values.
// Values survive forward/back navigation and are never cleared by transitions.
type Demographics struct {
	FullName        string
	DateOfBirth     string
	Age             string
	Gender          string
	ResidenceStatus string
	Address         string
	Region          string
	Parish          string
	City            string
	Zone            string
	PostalCode      string
	Phone           string
	Email           string
}

// WizardState is the full mutable state of one wizard run.
// It is owned by the wizard service; the booking selection fields are the
// only part other components may write, and only through that service.
type WizardState struct {
	Step           WizardStep
	UploadPreview  bool // meaningful only while Step == StepUpload
	SelectingSlots bool // booking sub-step: false = browsing, true = selectingSlots

	Demographics        Demographics
	DataCaptureLanguages []string

	Documents    []*Document
	PreviewTitle string
	PreviewKind  PreviewKind

	// Booking data, generated at booking-step entry and discarded on reset
	Days  []BookingDay
	Slots []BookingSlot

	SelectedSession     Session
	SelectedDayIndex    int
	SelectedSlotID      string
	SelectedApplicantID string
	Applicants          []Applicant
	CentreID            string

	Confirmed     bool
	ApplicationID string
	ConfirmedAt   time.Time
}

// CanContinueBooking is the sole gate for leaving the slot-selection
// sub-step: both a slot and an applicant must be chosen.
func (w *WizardState) CanContinueBooking() bool {
	return w.SelectedSlotID != "" && w.SelectedApplicantID != ""
}

// FilteredSlots returns the generated slots of the active session,
// chronological order preserved from generation.
func (w *WizardState) FilteredSlots() []BookingSlot {
	out := make([]BookingSlot, 0, len(w.Slots))
	for _, s := range w.Slots {
		if s.Session == w.SelectedSession {
			out = append(out, s)
		}
	}
	return out
}

// SlotByID finds a generated slot by its deterministic identifier
func (w *WizardState) SlotByID(id string) *BookingSlot {
	for i := range w.Slots {
		if w.Slots[i].ID == id {
			return &w.Slots[i]
		}
	}
	return nil
}

// ApplicantByID finds an applicant by id
func (w *WizardState) ApplicantByID(id string) *Applicant {
	for i := range w.Applicants {
		if w.Applicants[i].ID == id {
			return &w.Applicants[i]
		}
	}
	return nil
}

// DocumentByKey finds an upload slot by its key
func (w *WizardState) DocumentByKey(key string) *Document {
	for _, d := range w.Documents {
		if d.Key == key {
			return d
		}
	}
	return nil
}

// ClearSlotSelection drops the chosen slot; day and session changes call this
func (w *WizardState) ClearSlotSelection() {
	w.SelectedSlotID = ""
}

// HasBookingData reports whether slots were already generated for this run
func (w *WizardState) HasBookingData() bool {
	return len(w.Days) > 0 || len(w.Slots) > 0
}
