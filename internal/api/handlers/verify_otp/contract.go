package verify_otp

import (
	"context"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

type AuthService interface {
	VerifyOTP(ctx context.Context, contact, otp string) (*auth.IssuedSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
