package update_booking_selection

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgWrongStep          = "booking selection is only available on the booking step"
	msgInvalidSelection   = "invalid booking selection"
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

// Handle PUT /api/v1/wizard/booking/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	var req UpdateSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/booking/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.UpdateSelection(r.Context(), token, req.ToServiceUpdate())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /wizard/booking/selection - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("PUT /wizard/booking/selection - Wrong step")
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrInvalidSelection):
			h.logger.Warn("PUT /wizard/booking/selection - Invalid selection")
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("PUT /wizard/booking/selection - Failed to update selection: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
