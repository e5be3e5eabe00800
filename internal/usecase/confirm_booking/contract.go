package confirm_booking

import (
	"context"
	"time"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// SessionStore is the portal session repository contract
type SessionStore interface {
	Update(ctx context.Context, token string, fn func(*domain.PortalSession) error) error
}

// ReferenceData resolves centres and language labels for the projection
type ReferenceData interface {
	CentreByID(ctx context.Context, id string) (*domain.Centre, error)
	Languages(ctx context.Context) []domain.Language
}

// ApplicationStore receives the completed application for the dashboard
type ApplicationStore interface {
	Add(ctx context.Context, item domain.ApplicationItem)
}

// TimeProvider supplies the current time (swapped out in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the narrow logging contract this use case needs
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current wall-clock time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
