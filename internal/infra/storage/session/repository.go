package session

import (
	"context"
	"sync"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// Repository is the in-memory portal session store. All wizard state lives
// here for the lifetime of the process; there is no persistence by design.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]*domain.PortalSession
}

// NewRepository creates an empty session store
func NewRepository() *Repository {
	return &Repository{sessions: make(map[string]*domain.PortalSession)}
}

// Save stores a session under its token, replacing any previous one
func (r *Repository) Save(_ context.Context, s *domain.PortalSession) error {
	if s == nil {
		return ErrNilSession
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.Token] = s
	return nil
}

// Get returns a snapshot copy of the session for read-only use
func (r *Repository) Get(_ context.Context, token string) (*domain.PortalSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return cloneSession(s), nil
}

// cloneSession deep-copies the session so readers never alias live state
func cloneSession(s *domain.PortalSession) *domain.PortalSession {
	copied := *s
	if s.Wizard == nil {
		return &copied
	}

	w := *s.Wizard
	w.DataCaptureLanguages = append([]string(nil), s.Wizard.DataCaptureLanguages...)
	w.Days = append([]domain.BookingDay(nil), s.Wizard.Days...)
	w.Slots = append([]domain.BookingSlot(nil), s.Wizard.Slots...)
	w.Applicants = append([]domain.Applicant(nil), s.Wizard.Applicants...)
	w.Documents = make([]*domain.Document, len(s.Wizard.Documents))
	for i, d := range s.Wizard.Documents {
		doc := *d
		w.Documents[i] = &doc
	}
	copied.Wizard = &w
	return &copied
}

// Update runs fn against the live session under the store lock.
// Every state transition is an atomic read-modify-write through here,
// which is what keeps transitions single-writer.
func (r *Repository) Update(_ context.Context, token string, fn func(*domain.PortalSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return ErrSessionNotFound
	}
	return fn(s)
}

// Delete removes a session, returning the removed value so the caller can
// release any resources the wizard still owns
func (r *Repository) Delete(_ context.Context, token string) (*domain.PortalSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	delete(r.sessions, token)
	return s, nil
}
