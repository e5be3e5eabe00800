package refdata

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// Repository serves the static lookup tables. Data is immutable, so every
// accessor returns a fresh copy and needs no locking.
type Repository struct{}

// NewRepository creates the reference data repository
func NewRepository() *Repository {
	return &Repository{}
}

// Genders returns the gender option list
func (r *Repository) Genders(_ context.Context) []domain.Option {
	return copyOptions(genders)
}

// ResidenceStatuses returns the residence status option list
func (r *Repository) ResidenceStatuses(_ context.Context) []domain.Option {
	return copyOptions(residenceStatuses)
}

// Regions returns the region option list
func (r *Repository) Regions(_ context.Context) []domain.Option {
	return copyOptions(regions)
}

// Parishes returns the parish option list
func (r *Repository) Parishes(_ context.Context) []domain.Option {
	return copyOptions(parishes)
}

// CitiesByParish returns the city options of a parish, empty for unknown codes
func (r *Repository) CitiesByParish(_ context.Context, parish string) []domain.Option {
	return copyOptions(citiesByParish[parish])
}

// AllCitiesByParish returns the full parish to cities mapping
func (r *Repository) AllCitiesByParish(_ context.Context) map[string][]domain.Option {
	out := make(map[string][]domain.Option, len(citiesByParish))
	for k, v := range citiesByParish {
		out[k] = copyOptions(v)
	}
	return out
}

// Zones returns the zone option list
func (r *Repository) Zones(_ context.Context) []domain.Option {
	return copyOptions(zones)
}

// PostalCodes returns the postal code option list
func (r *Repository) PostalCodes(_ context.Context) []domain.Option {
	return copyOptions(postalCodes)
}

// DocumentTypes returns the allowed document types for an upload slot key
func (r *Repository) DocumentTypes(_ context.Context, key string) ([]domain.Option, error) {
	opts, ok := docTypesByKey[key]
	if !ok {
		return nil, ErrUnknownDocumentKey
	}
	return copyOptions(opts), nil
}

// DocumentSlots returns fresh upload slot templates for a new wizard run
func (r *Repository) DocumentSlots(_ context.Context) []*domain.Document {
	out := make([]*domain.Document, len(documentSlots))
	for i, d := range documentSlots {
		doc := d
		out[i] = &doc
	}
	return out
}

// Centres returns all registration centres
func (r *Repository) Centres(_ context.Context) []domain.Centre {
	return append([]domain.Centre(nil), centres...)
}

// CentreByID returns one centre by id
func (r *Repository) CentreByID(_ context.Context, id string) (*domain.Centre, error) {
	for _, c := range centres {
		if c.ID == id {
			centre := c
			return &centre, nil
		}
	}
	return nil, ErrCentreNotFound
}

// Applicants returns fresh applicant entries for a new wizard run
func (r *Repository) Applicants(_ context.Context) []domain.Applicant {
	return append([]domain.Applicant(nil), applicants...)
}

// Languages returns the data-capture language list
func (r *Repository) Languages(_ context.Context) []domain.Language {
	return append([]domain.Language(nil), languages...)
}

// Themes returns the display theme definitions
func (r *Repository) Themes(_ context.Context) []domain.Theme {
	return append([]domain.Theme(nil), themes...)
}

// SeedApplications returns the initial dashboard application list
func (r *Repository) SeedApplications(_ context.Context) []domain.ApplicationItem {
	return append([]domain.ApplicationItem(nil), seedApplications...)
}

func copyOptions(in []domain.Option) []domain.Option {
	return append([]domain.Option(nil), in...)
}
