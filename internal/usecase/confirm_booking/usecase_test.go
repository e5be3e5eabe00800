package confirm_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	applicationsRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/applications"
	refdataRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/refdata"
	sessionRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/session"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

const testToken = "confirm-session"

func confirmableWizard() *domain.WizardState {
	return &domain.WizardState{
		Step:                 domain.StepConfirmation,
		DataCaptureLanguages: []string{"eng", "fra"},
		Days: []domain.BookingDay{
			{ID: "d-2026-01-10", Date: time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), AvailableCount: 64},
			{ID: "d-2026-01-11", Date: time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC), AvailableCount: 64},
		},
		Slots: []domain.BookingSlot{
			{
				ID:        "m-09:00",
				StartTime: types.MustTimeString("09:00"),
				EndTime:   types.MustTimeString("09:15"),
				Available: 2,
				Session:   domain.SessionMorning,
			},
		},
		Applicants: []domain.Applicant{
			{ID: "a2", Name: "Ravi S."},
		},
		SelectedSession:     domain.SessionMorning,
		SelectedDayIndex:    0,
		SelectedSlotID:      "m-09:00",
		SelectedApplicantID: "a2",
		CentreID:            "KIN01",
	}
}

func newTestUseCase(t *testing.T, w *domain.WizardState) (*UseCase, *sessionRepo.Repository, *applicationsRepo.Repository) {
	t.Helper()

	sessions := sessionRepo.NewRepository()
	applications := applicationsRepo.NewRepository(nil)
	refdata := refdataRepo.NewRepository()

	require.NoError(t, sessions.Save(context.Background(), &domain.PortalSession{
		Token:  testToken,
		Wizard: w,
	}))

	uc := NewUseCaseWithTimeProvider(sessions, refdata, applications,
		fixedTime{t: time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)}, nopLogger{})
	return uc, sessions, applications
}

func TestExecute_ConfirmsBooking(t *testing.T) {
	uc, sessions, applications := newTestUseCase(t, confirmableWizard())
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{Token: testToken})
	require.NoError(t, err)

	assert.Len(t, resp.ApplicationID, 14)
	assert.Equal(t, "61", resp.ApplicationID[:2])
	assert.Equal(t, "Ravi S.", resp.ApplicantName)
	assert.Equal(t, "10 January 2026", resp.DateText)
	assert.Equal(t, "09:00 - 09:15", resp.SlotText)
	assert.Equal(t, "morning", resp.SessionText)
	assert.Equal(t, "Kingstown Registration Centre", resp.CentreName)
	assert.Equal(t, "2026-01-10 09:00", resp.DateTime)
	assert.Equal(t,
		fmt.Sprintf("APP:%s|DT:2026-01-10 09:00|CENTER:Kingstown Registration Centre", resp.ApplicationID),
		resp.QRPayload)

	// capacity is consumed on confirm
	stored, err := sessions.Get(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Wizard.SlotByID("m-09:00").Available)
	assert.True(t, stored.Wizard.Confirmed)

	// the completed application lands on the dashboard
	items := applications.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, resp.ApplicationID, items[0].ID)
	assert.Equal(t, domain.StatusCompleted, items[0].Status)
	assert.Equal(t, "2026-01-10", items[0].AppointmentDate)
	assert.Equal(t, "English, français", items[0].Languages)
}

func TestExecute_ReconfirmIsIdempotent(t *testing.T) {
	uc, sessions, applications := newTestUseCase(t, confirmableWizard())
	ctx := context.Background()

	first, err := uc.Execute(ctx, &Request{Token: testToken})
	require.NoError(t, err)
	second, err := uc.Execute(ctx, &Request{Token: testToken})
	require.NoError(t, err)

	assert.Equal(t, first.ApplicationID, second.ApplicationID)
	assert.Equal(t, first.QRPayload, second.QRPayload)

	stored, err := sessions.Get(ctx, testToken)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Wizard.SlotByID("m-09:00").Available,
		"capacity must not be decremented twice")
	assert.Len(t, applications.List(ctx), 1,
		"re-confirming must not add a second dashboard entry")
}

func TestExecute_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t, confirmableWizard())
		_, err := uc.Execute(ctx, &Request{Token: "missing"})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("wrong step", func(t *testing.T) {
		w := confirmableWizard()
		w.Step = domain.StepBooking
		uc, _, _ := newTestUseCase(t, w)
		_, err := uc.Execute(ctx, &Request{Token: testToken})
		assert.ErrorIs(t, err, ErrWrongStep)
	})

	t.Run("incomplete selection", func(t *testing.T) {
		w := confirmableWizard()
		w.SelectedApplicantID = ""
		uc, _, _ := newTestUseCase(t, w)
		_, err := uc.Execute(ctx, &Request{Token: testToken})
		assert.ErrorIs(t, err, ErrBookingIncomplete)
	})

	t.Run("unknown centre", func(t *testing.T) {
		w := confirmableWizard()
		w.CentreID = "XXX99"
		uc, _, _ := newTestUseCase(t, w)
		_, err := uc.Execute(ctx, &Request{Token: testToken})
		assert.ErrorIs(t, err, ErrCentreNotFound)
	})
}

func TestNewApplicationID_Shape(t *testing.T) {
	id := newApplicationID(time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC))
	assert.Len(t, id, 14)
	assert.Equal(t, "61", id[:2])
}
