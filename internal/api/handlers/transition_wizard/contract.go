package transition_wizard

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

type WizardService interface {
	Transition(ctx context.Context, token string, action domain.WizardAction) (*models.WizardView, error)
}

// TransitionObserver records applied transitions (nil disables recording)
type TransitionObserver interface {
	ObserveTransition(action, toStep string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
