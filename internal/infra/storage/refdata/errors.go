package refdata

import "errors"

var (
	// ErrCentreNotFound is returned when no centre exists for an id
	ErrCentreNotFound = errors.New("refdata.repository: centre not found")

	// ErrUnknownDocumentKey is returned for an unknown upload slot key
	ErrUnknownDocumentKey = errors.New("refdata.repository: unknown document key")
)
