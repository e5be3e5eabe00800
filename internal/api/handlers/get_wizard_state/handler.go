package get_wizard_state

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
)

const msgSessionNotFound = "session not found"

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

// Handle GET /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	view, err := h.service.GetState(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("GET /wizard - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /wizard - Failed to load wizard state: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
