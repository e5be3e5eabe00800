package get_booking_days

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
)

const (
	msgSessionNotFound = "session not found"
	msgWrongStep       = "booking data is only available on the booking step"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/wizard/booking
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	view, err := h.service.BookingDays(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /wizard/booking - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("GET /wizard/booking - Wrong step")
			handlers.RespondConflict(w, msgWrongStep)

		default:
			h.logger.Error("GET /wizard/booking - Failed to load booking data: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
