package get_applications

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

type ApplicationsService interface {
	List(ctx context.Context, filter domain.ApplicationFilter) ([]domain.ApplicationItem, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
