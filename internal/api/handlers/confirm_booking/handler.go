package confirm_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	confirmBooking "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgWrongStep          = "wizard is not on the confirmation step"
	msgBookingIncomplete  = "select a time slot and an applicant first"
	msgCentreNotFound     = "registration centre not found"
)

type Handler struct {
	useCase  ConfirmBookingUseCase
	observer BookingObserver
	logger   Logger
}

func NewHandler(useCase ConfirmBookingUseCase, observer BookingObserver, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		observer: observer,
		logger:   logger,
	}
}

// Handle POST /api/v1/wizard/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Token: token})
	if err != nil {
		h.respondError(w, "POST /wizard/confirm", err)
		return
	}

	if h.observer != nil {
		h.observer.ObserveBookingConfirmed()
	}

	h.logger.Info("POST /wizard/confirm - Booking confirmed: application_id=%s", result.ApplicationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// NotifyRequest HTTP request model of the notification stub
type NotifyRequest struct {
	Channel string `json:"channel"` // "sms" or "email"
}

// NotifyResponse HTTP response model of the notification stub
type NotifyResponse struct {
	Status  string `json:"status"`
	Channel string `json:"channel"`
}

// HandleNotify POST /api/v1/wizard/confirmation/notify
//
// Mock delivery: nothing is sent, the acknowledgement is immediate.
func (h *Handler) HandleNotify(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	var req NotifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/confirmation/notify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.Channel != "sms" && req.Channel != "email" {
		handlers.RespondBadRequest(w, "channel must be 'sms' or 'email'")
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Token: token})
	if err != nil {
		h.respondError(w, "POST /wizard/confirmation/notify", err)
		return
	}

	h.logger.Info("POST /wizard/confirmation/notify - Notification acknowledged: application_id=%s, channel=%s",
		result.ApplicationID, req.Channel)
	handlers.RespondJSON(w, http.StatusOK, NotifyResponse{Status: "sent", Channel: req.Channel})
}

// HandleDownload GET /api/v1/wizard/confirmation/download
//
// Returns the appointment acknowledgement as a plain-text attachment.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Token: token})
	if err != nil {
		h.respondError(w, "GET /wizard/confirmation/download", err)
		return
	}

	body := fmt.Sprintf(
		"Appointment Acknowledgement\n\nApplication ID: %s\nApplicant: %s\nDate: %s\nTime: %s (%s)\nCentre: %s\n%s\nContact: %s\n",
		result.ApplicationID,
		result.ApplicantName,
		result.DateText,
		result.SlotText,
		result.SessionText,
		result.CentreName,
		result.CentreAddress,
		result.CentreContact,
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", "acknowledgement-"+result.ApplicationID+".txt"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, confirmBooking.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found", op)
		handlers.RespondUnauthorized(w, msgSessionNotFound)

	case errors.Is(err, confirmBooking.ErrWrongStep):
		h.logger.Warn("%s - Wrong step", op)
		handlers.RespondConflict(w, msgWrongStep)

	case errors.Is(err, confirmBooking.ErrBookingIncomplete):
		h.logger.Warn("%s - Booking incomplete", op)
		handlers.RespondConflict(w, msgBookingIncomplete)

	case errors.Is(err, confirmBooking.ErrCentreNotFound):
		h.logger.Warn("%s - Centre not found", op)
		handlers.RespondNotFound(w, msgCentreNotFound)

	default:
		h.logger.Error("%s - Failed to confirm booking: error=%v", op, err)
		handlers.RespondInternalError(w)
	}
}
