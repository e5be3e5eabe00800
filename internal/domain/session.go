package domain

import "time"

// PortalSession is one logged-in page session. It owns exactly one wizard
// run and the session-scoped display context (theme, contact).
type PortalSession struct {
	Token     string
	Contact   string
	Theme     string
	CreatedAt time.Time
	Wizard    *WizardState
}
