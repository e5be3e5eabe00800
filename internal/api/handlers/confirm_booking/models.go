package confirm_booking

import (
	confirmBooking "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/confirm_booking"
)

// ConfirmationResponse HTTP response model: the literal display values
// of the confirmation screen
type ConfirmationResponse struct {
	ApplicationID string `json:"applicationId"`
	ApplicantName string `json:"applicantName"`
	DateText      string `json:"dateText"`
	SlotText      string `json:"slotText"`
	SessionText   string `json:"sessionText"`
	CentreName    string `json:"centreName"`
	CentreAddress string `json:"centreAddress"`
	CentreContact string `json:"centreContact"`
	DateTime      string `json:"dateTime"`
}

// FromUseCaseResponse converts the use case result into the HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmationResponse {
	return &ConfirmationResponse{
		ApplicationID: resp.ApplicationID,
		ApplicantName: resp.ApplicantName,
		DateText:      resp.DateText,
		SlotText:      resp.SlotText,
		SessionText:   resp.SessionText,
		CentreName:    resp.CentreName,
		CentreAddress: resp.CentreAddress,
		CentreContact: resp.CentreContact,
		DateTime:      resp.DateTime,
	}
}
