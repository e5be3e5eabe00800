package wizard

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown session token
	ErrSessionNotFound = errors.New("wizard.service: session not found")

	// ErrUnknownAction is returned for an action the state machine does not know
	ErrUnknownAction = errors.New("wizard.service: unknown action")

	// ErrTransitionNotAllowed is returned when a (state, action) pair is not
	// in the transition table; the state is left unchanged
	ErrTransitionNotAllowed = errors.New("wizard.service: transition not allowed")

	// ErrBookingIncomplete is returned when leaving slot selection without
	// both a slot and an applicant chosen
	ErrBookingIncomplete = errors.New("wizard.service: slot and applicant must be selected")

	// ErrWrongStep is returned when an operation is invoked outside its step
	ErrWrongStep = errors.New("wizard.service: operation not available on this step")

	// ErrDocumentNotFound is returned for an unknown upload slot key
	ErrDocumentNotFound = errors.New("wizard.service: document not found")

	// ErrNoFileAttached is returned when deleting from an empty upload slot
	ErrNoFileAttached = errors.New("wizard.service: no file attached")

	// ErrInvalidLanguages is returned when the language selection violates
	// the min/max bounds or names an unknown language
	ErrInvalidLanguages = errors.New("wizard.service: invalid language selection")

	// ErrInvalidSelection is returned for out-of-range day or unknown
	// session/applicant selection values
	ErrInvalidSelection = errors.New("wizard.service: invalid selection")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("wizard.service: internal error")
)
