package send_otp

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgContactRequired    = "phone number or email is required"
	msgCaptchaRequired    = "captcha confirmation is required"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/otp - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	challenge, err := h.service.SendOTP(r.Context(), req.Contact, req.CaptchaChecked)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrContactRequired):
			h.logger.Warn("POST /auth/otp - Missing contact")
			handlers.RespondBadRequest(w, msgContactRequired)

		case errors.Is(err, auth.ErrCaptchaRequired):
			h.logger.Warn("POST /auth/otp - Captcha not confirmed: contact=%s", req.Contact)
			handlers.RespondBadRequest(w, msgCaptchaRequired)

		default:
			h.logger.Error("POST /auth/otp - Failed to open OTP challenge: contact=%s, error=%v", req.Contact, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/otp - OTP challenge opened: contact=%s", challenge.Contact)
	handlers.RespondJSON(w, http.StatusOK, FromChallenge(challenge))
}
