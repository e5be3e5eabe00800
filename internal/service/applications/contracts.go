package applications

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// ApplicationStore is the dashboard list repository contract
type ApplicationStore interface {
	List(ctx context.Context) []domain.ApplicationItem
	Select(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

// Logger is the narrow logging contract for this service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
