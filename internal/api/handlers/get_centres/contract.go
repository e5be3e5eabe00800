package get_centres

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

type ReferenceData interface {
	Centres(ctx context.Context) []domain.Centre
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
