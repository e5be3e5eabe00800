package applications

import "errors"

var (
	// ErrApplicationNotFound is returned for an unknown application id
	ErrApplicationNotFound = errors.New("applications.service: application not found")

	// ErrInvalidStatus is returned for an unknown status filter value
	ErrInvalidStatus = errors.New("applications.service: invalid status filter")

	// ErrInvalidSort is returned for an unknown sort mode
	ErrInvalidSort = errors.New("applications.service: invalid sort mode")
)
