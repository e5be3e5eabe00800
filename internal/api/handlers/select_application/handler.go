package select_application

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/applications"
)

const msgApplicationNotFound = "application not found"

type Handler struct {
	service ApplicationsService
	logger  Logger
}

func NewHandler(service ApplicationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/applications/{id}/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.Select(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, applications.ErrApplicationNotFound):
			h.logger.Warn("POST /applications/%s/select - Application not found", id)
			handlers.RespondNotFound(w, msgApplicationNotFound)

		default:
			h.logger.Error("POST /applications/%s/select - Failed to select: error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /applications/%s/select - Application selected", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
