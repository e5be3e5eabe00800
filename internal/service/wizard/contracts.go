package wizard

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	generateSlots "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/generate_slots"
)

// SessionStore is the portal session repository contract
type SessionStore interface {
	Get(ctx context.Context, token string) (*domain.PortalSession, error)
	Update(ctx context.Context, token string, fn func(*domain.PortalSession) error) error
}

// ReferenceData provides the static lookup tables the wizard consumes
type ReferenceData interface {
	DocumentSlots(ctx context.Context) []*domain.Document
	Applicants(ctx context.Context) []domain.Applicant
	Languages(ctx context.Context) []domain.Language
	Centres(ctx context.Context) []domain.Centre
}

// BlobStore is the transient file collaborator. The wizard owns each
// handle it receives and releases it exactly once.
type BlobStore interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
	Release(ctx context.Context, handle string) error
}

// SlotGenerator produces booking days and session slots for a wizard run
type SlotGenerator interface {
	Execute(ctx context.Context, req *generateSlots.Request) (*generateSlots.Response, error)
}

// Logger is the narrow logging contract for this service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingSettings carries the deployment's session windows and slot policy
type BookingSettings struct {
	Sessions        []domain.SessionWindow
	DurationMinutes int
	Capacity        int
	VisibleDays     int
}
