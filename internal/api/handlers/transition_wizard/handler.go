package transition_wizard

import (
	"errors"
	"net/http"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/handlers"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/api/middleware"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgSessionNotFound      = "session not found"
	msgUnknownAction        = "unknown wizard action"
	msgTransitionNotAllowed = "transition not allowed from the current step"
	msgBookingIncomplete    = "select a time slot and an applicant first"
)

type Handler struct {
	service  WizardService
	observer TransitionObserver
	logger   Logger
}

func NewHandler(service WizardService, observer TransitionObserver, logger Logger) *Handler {
	return &Handler{
		service:  service,
		observer: observer,
		logger:   logger,
	}
}

// Handle POST /api/v1/wizard/transition
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/transition - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	view, err := h.service.Transition(r.Context(), token, domain.WizardAction(req.Action))
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/transition - Session not found")
			handlers.RespondUnauthorized(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrUnknownAction):
			h.logger.Warn("POST /wizard/transition - Unknown action: action=%s", req.Action)
			handlers.RespondBadRequest(w, msgUnknownAction)

		case errors.Is(err, wizard.ErrTransitionNotAllowed):
			h.logger.Warn("POST /wizard/transition - Transition not allowed: action=%s", req.Action)
			handlers.RespondConflict(w, msgTransitionNotAllowed)

		case errors.Is(err, wizard.ErrBookingIncomplete):
			h.logger.Warn("POST /wizard/transition - Booking incomplete: action=%s", req.Action)
			handlers.RespondConflict(w, msgBookingIncomplete)

		default:
			h.logger.Error("POST /wizard/transition - Failed to apply transition: action=%s, error=%v", req.Action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if h.observer != nil {
		h.observer.ObserveTransition(req.Action, view.StepName)
	}

	h.logger.Info("POST /wizard/transition - Transition applied: action=%s, step=%s", req.Action, view.StepName)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromWizardView(view))
}
