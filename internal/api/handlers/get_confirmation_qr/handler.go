package get_confirmation_qr

import (
	"errors"
	"net/http"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	confirmBooking "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/confirm_booking"
)

const (
	msgSessionNotFound   = "session not found"
	msgWrongStep         = "wizard is not on the confirmation step"
	msgBookingIncomplete = "select a time slot and an applicant first"
)

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/confirmation/qr?size=256
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	size := defaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < minQRSize || parsed > maxQRSize {
			handlers.RespondBadRequest(w, "size must be an integer between 64 and 1024")
			return
		}
		size = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/confirmation/qr - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrWrongStep):
			h.logger.Warn("GET /wizard/confirmation/qr - Wrong step")
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, confirmBooking.ErrBookingIncomplete):
			h.logger.Warn("GET /wizard/confirmation/qr - Booking incomplete")
			handlers.RespondConflict(w, msgBookingIncomplete)

		default:
			h.logger.Error("GET /wizard/confirmation/qr - Failed to resolve confirmation: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	png, err := qrcode.Encode(result.QRPayload, qrcode.Medium, size)
	if err != nil {
		h.logger.Error("GET /wizard/confirmation/qr - Failed to encode QR: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
