package auth

import (
	"context"
	"time"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// SessionStore persists issued portal sessions
type SessionStore interface {
	Save(ctx context.Context, s *domain.PortalSession) error
	Update(ctx context.Context, token string, fn func(*domain.PortalSession) error) error
}

// ThemeCatalog lists the display themes a session may switch to
type ThemeCatalog interface {
	Themes(ctx context.Context) []domain.Theme
}

// WizardFactory builds the fresh wizard run attached to a new session
type WizardFactory interface {
	NewRun(ctx context.Context) *domain.WizardState
}

// TimeProvider supplies the current time (swapped out in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the narrow logging contract for this service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Settings mock OTP flow configuration
type Settings struct {
	AcceptedOTP   string
	OTPLength     int
	ResendSeconds int
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
