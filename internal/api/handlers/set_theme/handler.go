package set_theme

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSessionNotFound    = "session not found"
	msgUnknownTheme       = "unknown theme"
)

// SetThemeRequest HTTP request model
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// SetThemeResponse HTTP response model
type SetThemeResponse struct {
	Theme string `json:"theme"`
}

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/session/theme
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	var req SetThemeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /session/theme - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetTheme(r.Context(), token, req.Theme); err != nil {
		switch {
		case errors.Is(err, auth.ErrSessionNotFound):
			h.logger.Warn("PUT /session/theme - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, auth.ErrUnknownTheme):
			h.logger.Warn("PUT /session/theme - Unknown theme: %q", req.Theme)
			handlers.RespondBadRequest(w, msgUnknownTheme)

		default:
			h.logger.Error("PUT /session/theme - Failed to set theme: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SetThemeResponse{Theme: req.Theme})
}
