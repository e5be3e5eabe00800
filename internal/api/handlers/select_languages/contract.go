package select_languages

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

type WizardService interface {
	SelectLanguages(ctx context.Context, token string, codes []string) (*models.WizardView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
