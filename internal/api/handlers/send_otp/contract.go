package send_otp

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

type AuthService interface {
	SendOTP(ctx context.Context, contact string, captchaChecked bool) (*auth.OTPChallenge, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
