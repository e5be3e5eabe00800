package save_demographics

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

// Handle PUT /api/v1/wizard/demographics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	var req SaveDemographicsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/demographics - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.SaveDemographics(r.Context(), token, req.ToServiceUpdate())
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /wizard/demographics - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		default:
			h.logger.Error("PUT /wizard/demographics - Failed to save demographics: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
