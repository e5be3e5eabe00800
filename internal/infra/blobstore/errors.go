package blobstore

import "errors"

var (
	// ErrHandleNotFound is returned for an unknown or already-released handle
	ErrHandleNotFound = errors.New("blobstore: handle not found")

	// ErrEmptyPayload is returned when Put receives no data
	ErrEmptyPayload = errors.New("blobstore: empty payload")
)
