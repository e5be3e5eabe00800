package get_centres

import (
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
)

type Handler struct {
	refdata ReferenceData
	logger  Logger
}

func NewHandler(refdata ReferenceData, logger Logger) *Handler {
	return &Handler{
		refdata: refdata,
		logger:  logger,
	}
}

// Handle GET /api/v1/centres
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	centres := h.refdata.Centres(r.Context())
	handlers.RespondJSON(w, http.StatusOK, FromDomainCentres(centres))
}
