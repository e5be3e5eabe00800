package get_applications

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/applications"
)

const (
	msgInvalidStatus = "unknown status filter"
	msgInvalidSort   = "unknown sort mode"
)

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

// Handle GET /api/v1/applications?search=&status=&sort=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := domain.ApplicationFilter{
		Search: query.Get("search"),
		Sort:   domain.ApplicationSort(query.Get("sort")),
	}
	if raw := query.Get("status"); raw != "" && raw != "ALL" {
		status := domain.ApplicationStatus(raw)
		filter.Status = &status
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, applications.ErrInvalidStatus):
			h.logger.Warn("GET /applications - Unknown status filter: status=%s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, applications.ErrInvalidSort):
			h.logger.Warn("GET /applications - Unknown sort mode: sort=%s", query.Get("sort"))
			handlers.RespondBadRequest(w, msgInvalidSort)

		default:
			h.logger.Error("GET /applications - Failed to list applications: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainApplications(items))
}
