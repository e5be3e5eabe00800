package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	sessionRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/session"
)

// Service implements the mock OTP login. There is no real identity
// behind it: any contact plus the configured accept code yields a
// session token keying the in-memory portal session.
type Service struct {
	sessions     SessionStore
	wizards      WizardFactory
	themes       ThemeCatalog
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the auth service
func NewService(sessions SessionStore, wizards WizardFactory, themes ThemeCatalog, settings Settings, logger Logger) *Service {
	return &Service{
		sessions:     sessions,
		wizards:      wizards,
		themes:       themes,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// OTPChallenge describes the pending OTP stage after a send request
type OTPChallenge struct {
	Contact       string
	ResendSeconds int
}

// IssuedSession is the result of a successful verification
type IssuedSession struct {
	Token string
}

// SendOTP validates the contact stage and opens the OTP stage.
// Nothing is actually sent; the accept code is fixed by configuration.
func (s *Service) SendOTP(_ context.Context, contact string, captchaChecked bool) (*OTPChallenge, error) {
	if contact == "" {
		return nil, ErrContactRequired
	}
	if !captchaChecked {
		return nil, ErrCaptchaRequired
	}

	s.logger.Info("SendOTP: challenge opened for contact=%q", contact)
	return &OTPChallenge{
		Contact:       contact,
		ResendSeconds: s.settings.ResendSeconds,
	}, nil
}

// VerifyOTP checks the entered code and, on success, issues a session
// with a fresh wizard run attached
func (s *Service) VerifyOTP(ctx context.Context, contact, otp string) (*IssuedSession, error) {
	if contact == "" {
		return nil, ErrContactRequired
	}
	if len(otp) != s.settings.OTPLength {
		return nil, fmt.Errorf("%w: expected %d digits", ErrInvalidOTPFormat, s.settings.OTPLength)
	}
	if otp != s.settings.AcceptedOTP {
		s.logger.Warn("VerifyOTP: wrong otp for contact=%q", contact)
		return nil, ErrWrongOTP
	}

	session := &domain.PortalSession{
		Token:     uuid.NewString(),
		Contact:   contact,
		Theme:     "default",
		CreatedAt: s.timeProvider.Now(),
		Wizard:    s.wizards.NewRun(ctx),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		s.logger.Error("VerifyOTP: save session: %v", err)
		return nil, fmt.Errorf("%w: save session: %v", ErrInternal, err)
	}

	s.logger.Info("VerifyOTP: session issued for contact=%q", contact)
	return &IssuedSession{Token: session.Token}, nil
}

// SetTheme switches the session's display theme to one of the catalog
// entries. The wizard run is untouched.
func (s *Service) SetTheme(ctx context.Context, token, theme string) error {
	if !s.themeKnown(ctx, theme) {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}

	err := s.sessions.Update(ctx, token, func(session *domain.PortalSession) error {
		session.Theme = theme
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("SetTheme: update session: %v", err)
		return fmt.Errorf("%w: set theme: %v", ErrInternal, err)
	}

	s.logger.Info("SetTheme: theme=%q", theme)
	return nil
}

func (s *Service) themeKnown(ctx context.Context, theme string) bool {
	for _, t := range s.themes.Themes(ctx) {
		if t.Name == theme {
			return true
		}
	}
	return false
}
