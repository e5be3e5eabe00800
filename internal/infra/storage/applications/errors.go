package applications

import "errors"

var (
	// ErrApplicationNotFound is returned when no application exists for an id
	ErrApplicationNotFound = errors.New("applications.repository: application not found")
)
