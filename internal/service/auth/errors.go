package auth

import "errors"

var (
	// ErrContactRequired is returned when no contact value was provided
	ErrContactRequired = errors.New("auth.service: contact is required")

	// ErrCaptchaRequired is returned when the captcha was not solved
	ErrCaptchaRequired = errors.New("auth.service: captcha confirmation is required")

	// ErrInvalidOTPFormat is returned for an OTP of the wrong shape
	ErrInvalidOTPFormat = errors.New("auth.service: invalid otp format")

	// ErrWrongOTP is returned when the entered OTP does not match.
	// Recoverable: the UI surfaces a dialog and the user retries.
	ErrWrongOTP = errors.New("auth.service: wrong otp")

	// ErrSessionNotFound is returned when the token names no live session
	ErrSessionNotFound = errors.New("auth.service: session not found")

	// ErrUnknownTheme is returned when the requested theme is not in the catalog
	ErrUnknownTheme = errors.New("auth.service: unknown theme")

	// ErrInternal is returned for unexpected failures
	ErrInternal = errors.New("auth.service: internal error")
)
