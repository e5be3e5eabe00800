package get_options

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

type ReferenceData interface {
	Genders(ctx context.Context) []domain.Option
	ResidenceStatuses(ctx context.Context) []domain.Option
	Regions(ctx context.Context) []domain.Option
	Parishes(ctx context.Context) []domain.Option
	AllCitiesByParish(ctx context.Context) map[string][]domain.Option
	Zones(ctx context.Context) []domain.Option
	PostalCodes(ctx context.Context) []domain.Option
	DocumentSlots(ctx context.Context) []*domain.Document
	DocumentTypes(ctx context.Context, key string) ([]domain.Option, error)
	Languages(ctx context.Context) []domain.Language
	Themes(ctx context.Context) []domain.Theme
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
