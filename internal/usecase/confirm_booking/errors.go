package confirm_booking

import "errors"

var (
	// ErrSessionNotFound is returned for an unknown session token
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrWrongStep is returned when the wizard is not on the confirmation step
	ErrWrongStep = errors.New("confirm_booking: wizard is not on the confirmation step")

	// ErrBookingIncomplete is returned when slot or applicant is missing
	ErrBookingIncomplete = errors.New("confirm_booking: slot and applicant must be selected")

	// ErrCentreNotFound is returned when the wizard's centre cannot be resolved
	ErrCentreNotFound = errors.New("confirm_booking: centre not found")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("confirm_booking: internal error")
)
