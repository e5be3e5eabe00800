package delete_document

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

type WizardService interface {
	DeleteDocument(ctx context.Context, token, key string) (*models.WizardView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
