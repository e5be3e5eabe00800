package send_otp

import (
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

// SendOTPRequest HTTP request model
type SendOTPRequest struct {
	Contact        string `json:"contact"`
	CaptchaChecked bool   `json:"captchaChecked"`
}

// SendOTPResponse HTTP response model
type SendOTPResponse struct {
	Contact       string `json:"contact"`
	ResendSeconds int    `json:"resendSeconds"`
}

// FromChallenge converts the service result into the HTTP response
func FromChallenge(c *auth.OTPChallenge) *SendOTPResponse {
	return &SendOTPResponse{
		Contact:       c.Contact,
		ResendSeconds: c.ResendSeconds,
	}
}
