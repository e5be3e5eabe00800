package delete_document

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
)

const (
	msgSessionNotFound  = "session not found"
	msgWrongStep        = "documents can only be changed on the upload step"
	msgDocumentNotFound = "document slot not found"
	msgNoFileAttached   = "no file attached to this document slot"
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

// Handle DELETE /api/v1/wizard/documents/{key}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())
	key := mux.Vars(r)["key"]

	view, err := h.service.DeleteDocument(r.Context(), token, key)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("DELETE /wizard/documents/%s - Session not found", key)
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrWrongStep):
			h.logger.Warn("DELETE /wizard/documents/%s - Wrong step", key)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, wizard.ErrDocumentNotFound):
			h.logger.Warn("DELETE /wizard/documents/%s - Document slot not found", key)
			handlers.RespondNotFound(w, msgDocumentNotFound)

		case errors.Is(err, wizard.ErrNoFileAttached):
			h.logger.Warn("DELETE /wizard/documents/%s - No file attached", key)
			handlers.RespondConflict(w, msgNoFileAttached)

		default:
			h.logger.Error("DELETE /wizard/documents/%s - Failed to delete: error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /wizard/documents/%s - File removed", key)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
