package save_demographics

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

// SaveDemographicsRequest HTTP request model. Omitted fields are left
// unchanged, mirroring per-field form edits.
type SaveDemographicsRequest struct {
	FullName        *string `json:"fullName,omitempty"`
	DateOfBirth     *string `json:"dateOfBirth,omitempty"`
	Age             *string `json:"age,omitempty"`
	Gender          *string `json:"gender,omitempty"`
	ResidenceStatus *string `json:"residenceStatus,omitempty"`
	Address         *string `json:"address,omitempty"`
	Region          *string `json:"region,omitempty"`
	Parish          *string `json:"parish,omitempty"`
	City            *string `json:"city,omitempty"`
	Zone            *string `json:"zone,omitempty"`
	PostalCode      *string `json:"postalCode,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
}

// ToServiceUpdate converts the HTTP request into the service model
func (r *SaveDemographicsRequest) ToServiceUpdate() *models.DemographicsUpdate {
	return &models.DemographicsUpdate{
		FullName:        r.FullName,
		DateOfBirth:     r.DateOfBirth,
		Age:             r.Age,
		Gender:          r.Gender,
		ResidenceStatus: r.ResidenceStatus,
		Address:         r.Address,
		Region:          r.Region,
		Parish:          r.Parish,
		City:            r.City,
		Zone:            r.Zone,
		PostalCode:      r.PostalCode,
		Phone:           r.Phone,
		Email:           r.Email,
	}
}
