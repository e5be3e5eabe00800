package save_demographics

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

type WizardService interface {
	SaveDemographics(ctx context.Context, token string, upd *models.DemographicsUpdate) (*models.WizardView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
