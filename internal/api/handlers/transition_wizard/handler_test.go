package transition_wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubWizardService struct {
	view *models.WizardView
	err  error

	gotAction domain.WizardAction
}

func (s *stubWizardService) Transition(_ context.Context, _ string, action domain.WizardAction) (*models.WizardView, error) {
	s.gotAction = action
	return s.view, s.err
}

type recordingObserver struct {
	actions []string
	steps   []string
}

func (o *recordingObserver) ObserveTransition(action, toStep string) {
	o.actions = append(o.actions, action)
	o.steps = append(o.steps, toStep)
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/transition", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubWizardService{view: &models.WizardView{Step: 1, StepName: "upload"}}
	observer := &recordingObserver{}
	h := NewHandler(svc, observer, nopLogger{})

	rec := doRequest(t, h, TransitionRequest{Action: "advance"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ActionAdvance, svc.gotAction)
	assert.Equal(t, []string{"advance"}, observer.actions)
	assert.Equal(t, []string{"upload"}, observer.steps)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "upload", resp["stepName"])
}

func TestHandle_NilObserver(t *testing.T) {
	svc := &stubWizardService{view: &models.WizardView{StepName: "demographic"}}
	h := NewHandler(svc, nil, nopLogger{})

	rec := doRequest(t, h, TransitionRequest{Action: "back"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "session not found", err: wizard.ErrSessionNotFound, wantCode: http.StatusUnauthorized},
		{name: "unknown action", err: wizard.ErrUnknownAction, wantCode: http.StatusBadRequest},
		{name: "transition not allowed", err: wizard.ErrTransitionNotAllowed, wantCode: http.StatusConflict},
		{name: "booking incomplete", err: wizard.ErrBookingIncomplete, wantCode: http.StatusConflict},
		{name: "internal", err: assert.AnError, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			observer := &recordingObserver{}
			h := NewHandler(&stubWizardService{err: tt.err}, observer, nopLogger{})

			rec := doRequest(t, h, TransitionRequest{Action: "continue"})
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Empty(t, observer.actions, "failed transitions must not be recorded")
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubWizardService{}, nil, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wizard/transition", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
