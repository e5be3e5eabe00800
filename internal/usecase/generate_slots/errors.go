package generate_slots

import "errors"

var (
	// ErrInvalidInput is returned at request validation failures
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInvalidWindow is returned when a session window is empty or reversed
	ErrInvalidWindow = errors.New("generate_slots: invalid session window")

	// ErrInvalidDuration is returned for an out-of-range slot duration
	ErrInvalidDuration = errors.New("generate_slots: invalid slot duration")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("generate_slots: internal error")
)
