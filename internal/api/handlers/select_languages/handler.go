package select_languages

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
	msgInvalidLanguages   = "invalid language selection"
)

// SelectLanguagesRequest HTTP request model
type SelectLanguagesRequest struct {
	Languages []string `json:"languages"`
}

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

// Handle PUT /api/v1/wizard/languages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	var req SelectLanguagesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /wizard/languages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.SelectLanguages(r.Context(), token, req.Languages)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("PUT /wizard/languages - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrInvalidLanguages):
			h.logger.Warn("PUT /wizard/languages - Invalid selection: languages=%v", req.Languages)
			handlers.RespondBadRequest(w, msgInvalidLanguages)

		default:
			h.logger.Error("PUT /wizard/languages - Failed to select languages: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
