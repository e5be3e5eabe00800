package session

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for a token
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrNilSession is returned when a nil session is passed to Save
	ErrNilSession = errors.New("session.repository: nil session")
)
