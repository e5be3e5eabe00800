package verify_otp

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidOTPFormat   = "invalid otp format"
	msgWrongOTP           = "wrong otp, please try again"
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

// Handle POST /api/v1/auth/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	issued, err := h.service.VerifyOTP(r.Context(), req.Contact, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidOTPFormat):
			h.logger.Warn("POST /auth/verify - Invalid OTP format: contact=%s", req.Contact)
			handlers.RespondBadRequest(w, msgInvalidOTPFormat)

		case errors.Is(err, auth.ErrWrongOTP):
			h.logger.Warn("POST /auth/verify - Wrong OTP: contact=%s", req.Contact)
			handlers.RespondUnauthorized(w, msgWrongOTP)

		default:
			h.logger.Error("POST /auth/verify - Failed to verify OTP: contact=%s, error=%v", req.Contact, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/verify - Session issued: contact=%s", req.Contact)
	handlers.RespondJSON(w, http.StatusOK, FromIssuedSession(issued))
}
