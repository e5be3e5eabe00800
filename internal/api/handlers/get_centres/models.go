package get_centres

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// CentrePayload one registration centre
type CentrePayload struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	Timing    string  `json:"timing"`
	LunchTime string  `json:"lunchTime"`
	OpenDays  string  `json:"openDays"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CentresResponse HTTP response model
type CentresResponse struct {
	Centres []CentrePayload `json:"centres"`
}

// FromDomainCentres converts domain centres into the HTTP response
func FromDomainCentres(centres []domain.Centre) *CentresResponse {
	resp := &CentresResponse{Centres: make([]CentrePayload, 0, len(centres))}
	for _, c := range centres {
		resp.Centres = append(resp.Centres, CentrePayload{
			ID:        c.ID,
			Name:      c.Name,
			Address:   c.Address,
			Phone:     c.Phone,
			Email:     c.Email,
			Timing:    c.Timing,
			LunchTime: c.LunchTime,
			OpenDays:  c.OpenDays,
			Latitude:  c.Latitude,
			Longitude: c.Longitude,
		})
	}
	return resp
}
