package get_applications

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

// ApplicationPayload one dashboard application row
type ApplicationPayload struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AppointmentDate string `json:"appointmentDate"`
	Status          string `json:"status"`
	Languages       string `json:"languages"`
	Selected        bool   `json:"selected"`
}

// ApplicationsResponse HTTP response model
type ApplicationsResponse struct {
	Applications []ApplicationPayload `json:"applications"`
}

// FromDomainApplications converts dashboard items into the HTTP response
func FromDomainApplications(items []domain.ApplicationItem) *ApplicationsResponse {
	resp := &ApplicationsResponse{Applications: make([]ApplicationPayload, 0, len(items))}
	for _, item := range items {
		resp.Applications = append(resp.Applications, ApplicationPayload{
			ID:              item.ID,
			Name:            item.Name,
			AppointmentDate: item.AppointmentDate,
			Status:          string(item.Status),
			Languages:       item.Languages,
			Selected:        item.Selected,
		})
	}
	return resp
}
