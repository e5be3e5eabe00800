package get_wizard_state

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

type WizardService interface {
	GetState(ctx context.Context, token string) (*models.WizardView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
