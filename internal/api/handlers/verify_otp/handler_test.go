package verify_otp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/auth"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubAuthService struct {
	issued *auth.IssuedSession
	err    error
}

func (s *stubAuthService) VerifyOTP(context.Context, string, string) (*auth.IssuedSession, error) {
	return s.issued, s.err
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	h := NewHandler(&stubAuthService{issued: &auth.IssuedSession{Token: "tok-123"}}, nopLogger{})

	rec := doRequest(t, h, VerifyOTPRequest{Contact: "x@example.com", OTP: "1111"})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp VerifyOTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok-123", resp.Token)
}

func TestHandle_WrongOTP(t *testing.T) {
	h := NewHandler(&stubAuthService{err: auth.ErrWrongOTP}, nopLogger{})

	rec := doRequest(t, h, VerifyOTPRequest{Contact: "x@example.com", OTP: "9999"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidOTPFormat(t *testing.T) {
	h := NewHandler(&stubAuthService{err: auth.ErrInvalidOTPFormat}, nopLogger{})

	rec := doRequest(t, h, VerifyOTPRequest{Contact: "x@example.com", OTP: "12"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubAuthService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&stubAuthService{err: assert.AnError}, nopLogger{})

	rec := doRequest(t, h, VerifyOTPRequest{Contact: "x@example.com", OTP: "1111"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
