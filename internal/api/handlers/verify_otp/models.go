package verify_otp

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

// VerifyOTPRequest HTTP request model
type VerifyOTPRequest struct {
	Contact string `json:"contact"`
	OTP     string `json:"otp"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
	Token string `json:"token"`
}

// FromIssuedSession converts the service result into the HTTP response
func FromIssuedSession(s *auth.IssuedSession) *VerifyOTPResponse {
	return &VerifyOTPResponse{Token: s.Token}
}
