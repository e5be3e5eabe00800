package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/blobstore"
	refdataRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/refdata"
	sessionRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/session"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
	generateSlots "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/generate_slots"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/ptr"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

const testToken = "test-session"

func testSettings() BookingSettings {
	return BookingSettings{
		Sessions: []domain.SessionWindow{
			{Session: domain.SessionMorning, Start: types.MustTimeString("09:00"), End: types.MustTimeString("13:00")},
			{Session: domain.SessionAfternoon, Start: types.MustTimeString("13:00"), End: types.MustTimeString("17:00")},
		},
		DurationMinutes: 15,
		Capacity:        2,
		VisibleDays:     3,
	}
}

func newTestService(t *testing.T) (*Service, *blobstore.Store) {
	t.Helper()

	sessions := sessionRepo.NewRepository()
	refdata := refdataRepo.NewRepository()
	blobs := blobstore.NewStore()
	slotGen := generateSlots.NewUseCaseWithTimeProvider(
		fixedTime{t: time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC)}, nopLogger{})

	svc := NewService(sessions, refdata, blobs, slotGen, testSettings(), nopLogger{})

	require.NoError(t, sessions.Save(context.Background(), &domain.PortalSession{
		Token:  testToken,
		Wizard: svc.NewRun(context.Background()),
	}))

	return svc, blobs
}

// advanceToBooking walks a fresh run to the booking step
func advanceToBooking(t *testing.T, svc *Service) *models.WizardView {
	t.Helper()
	ctx := context.Background()

	_, err := svc.Transition(ctx, testToken, domain.ActionAdvance)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, testToken, domain.ActionOpenPreview)
	require.NoError(t, err)
	view, err := svc.Transition(ctx, testToken, domain.ActionContinue)
	require.NoError(t, err)
	return view
}

func TestNewRun(t *testing.T) {
	svc, _ := newTestService(t)

	w := svc.NewRun(context.Background())
	assert.Equal(t, domain.StepDemographic, w.Step)
	assert.False(t, w.UploadPreview)
	assert.Len(t, w.Documents, 4)
	assert.False(t, w.HasBookingData())
}

func TestGetState_UnknownToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetState(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTransition_EnteringBookingGeneratesData(t *testing.T) {
	svc, _ := newTestService(t)

	view := advanceToBooking(t, svc)

	require.NotNil(t, view.Booking)
	assert.Len(t, view.Booking.Days, 3)
	assert.Equal(t, string(domain.SessionMorning), view.Booking.Session)
	assert.Equal(t, 0, view.Booking.DayIndex)
	assert.Empty(t, view.Booking.SelectedSlotID)
	assert.Len(t, view.Booking.Slots, 16)
	assert.Len(t, view.Booking.Applicants, 3)
	assert.False(t, view.Booking.CanContinue)
}

func TestTransition_BookingDataGeneratedOncePerRun(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	advanceToBooking(t, svc)

	slotID := "m-10:30"
	_, err := svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr(slotID)})
	require.NoError(t, err)

	// leave and re-enter the booking step
	_, err = svc.Transition(ctx, testToken, domain.ActionBack)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, testToken, domain.ActionOpenPreview)
	require.NoError(t, err)
	view, err := svc.Transition(ctx, testToken, domain.ActionContinue)
	require.NoError(t, err)

	// the selection survived because the data was not regenerated
	assert.Equal(t, slotID, view.Booking.SelectedSlotID)
}

func TestSaveDemographics_MergesAndClearsDependentCity(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name := "John Doe"
	parish := "st-george"
	city := "kingstown"
	view, err := svc.SaveDemographics(ctx, testToken, &models.DemographicsUpdate{
		FullName: &name,
		Parish:   &parish,
		City:     &city,
	})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", view.Demographics.FullName)
	assert.Equal(t, "kingstown", view.Demographics.City)

	// changing the parish invalidates the chosen city
	other := "st-andrew"
	view, err = svc.SaveDemographics(ctx, testToken, &models.DemographicsUpdate{Parish: &other})
	require.NoError(t, err)
	assert.Equal(t, "st-andrew", view.Demographics.Parish)
	assert.Empty(t, view.Demographics.City)
	assert.Equal(t, "John Doe", view.Demographics.FullName)
}

func TestSelectLanguages(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// english is auto-included
	view, err := svc.SelectLanguages(ctx, testToken, []string{"fra"})
	require.NoError(t, err)
	assert.Equal(t, []string{"eng", "fra"}, view.Languages)

	// explicit english keeps its position
	view, err = svc.SelectLanguages(ctx, testToken, []string{"eng"})
	require.NoError(t, err)
	assert.Equal(t, []string{"eng"}, view.Languages)

	// too many
	_, err = svc.SelectLanguages(ctx, testToken, []string{"fra", "hin"})
	assert.ErrorIs(t, err, ErrInvalidLanguages)

	// unknown code
	_, err = svc.SelectLanguages(ctx, testToken, []string{"xyz"})
	assert.ErrorIs(t, err, ErrInvalidLanguages)
}

func TestUploadDocument_Lifecycle(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	// uploads are rejected outside the upload step
	_, err := svc.UploadDocument(ctx, testToken, "id", "CIN", "card.pdf", "application/pdf", []byte("pdf"))
	assert.ErrorIs(t, err, ErrWrongStep)

	_, err = svc.Transition(ctx, testToken, domain.ActionAdvance)
	require.NoError(t, err)

	view, err := svc.UploadDocument(ctx, testToken, "id", "CIN", "card.pdf", "application/pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, 1, blobs.Len())
	assert.Equal(t, "Identity Proof", view.PreviewTitle)
	assert.Equal(t, "pdf", view.PreviewKind)

	doc := view.Documents[0]
	assert.True(t, doc.HasFile)
	assert.Equal(t, "card.pdf", doc.FileName)

	// replacing the file releases the old handle
	view, err = svc.UploadDocument(ctx, testToken, "id", "CIN", "scan.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.Equal(t, 1, blobs.Len())
	assert.Equal(t, "image", view.PreviewKind)

	// unknown slot key
	_, err = svc.UploadDocument(ctx, testToken, "nope", "CIN", "x.pdf", "application/pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteDocument_ReleasesHandleExactlyOnce(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	_, err := svc.Transition(ctx, testToken, domain.ActionAdvance)
	require.NoError(t, err)

	_, err = svc.UploadDocument(ctx, testToken, "rel", "REL", "rel.pdf", "application/pdf", []byte("rel"))
	require.NoError(t, err)
	require.Equal(t, 1, blobs.Len())

	view, err := svc.DeleteDocument(ctx, testToken, "rel")
	require.NoError(t, err)
	assert.Equal(t, 0, blobs.Len())
	assert.False(t, view.Documents[2].HasFile)
	assert.Equal(t, string(domain.PreviewNone), view.PreviewKind)
	assert.Empty(t, view.PreviewTitle)

	// deleting again reports the empty slot instead of double-releasing
	_, err = svc.DeleteDocument(ctx, testToken, "rel")
	assert.ErrorIs(t, err, ErrNoFileAttached)
}

func TestDeleteDocument_KeepsUnrelatedPreview(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Transition(ctx, testToken, domain.ActionAdvance)
	require.NoError(t, err)

	_, err = svc.UploadDocument(ctx, testToken, "id", "CIN", "id.pdf", "application/pdf", []byte("a"))
	require.NoError(t, err)
	_, err = svc.UploadDocument(ctx, testToken, "addr", "RNC", "addr.pdf", "application/pdf", []byte("b"))
	require.NoError(t, err)

	// the preview shows the address proof; deleting the identity proof
	// must not reset it
	view, err := svc.DeleteDocument(ctx, testToken, "id")
	require.NoError(t, err)
	assert.Equal(t, "Address Proof", view.PreviewTitle)
}

func TestUpdateSelection_DayAndSessionChangesClearSlot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	advanceToBooking(t, svc)

	view, err := svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("m-09:00")})
	require.NoError(t, err)
	require.Equal(t, "m-09:00", view.Booking.SelectedSlotID)

	// changing the session clears the slot
	afternoon := string(domain.SessionAfternoon)
	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{Session: ptr.Ptr(afternoon)})
	require.NoError(t, err)
	assert.Empty(t, view.Booking.SelectedSlotID)
	assert.Equal(t, afternoon, view.Booking.Session)

	// reselect a slot, then change the day
	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("a-13:00")})
	require.NoError(t, err)
	require.Equal(t, "a-13:00", view.Booking.SelectedSlotID)

	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{DayIndex: ptr.Ptr(1)})
	require.NoError(t, err)
	assert.Empty(t, view.Booking.SelectedSlotID)

	// even reselecting the already active day clears the slot
	_, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("a-13:15")})
	require.NoError(t, err)
	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{DayIndex: ptr.Ptr(1)})
	require.NoError(t, err)
	assert.Empty(t, view.Booking.SelectedSlotID)
}

func TestUpdateSelection_FullSlotIsSilentNoOp(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	advanceToBooking(t, svc)

	// drain m-09:30 to zero through the live state
	sessions := svc.sessions.(*sessionRepo.Repository)
	require.NoError(t, sessions.Update(ctx, testToken, func(s *domain.PortalSession) error {
		slot := s.Wizard.SlotByID("m-09:30")
		slot.Available = 0
		return nil
	}))

	view, err := svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("m-09:30")})
	require.NoError(t, err)
	assert.Empty(t, view.Booking.SelectedSlotID, "full slot selection must not stick")

	// a previous valid selection survives the no-op
	_, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("m-10:00")})
	require.NoError(t, err)
	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("m-09:30")})
	require.NoError(t, err)
	assert.Equal(t, "m-10:00", view.Booking.SelectedSlotID)
}

func TestUpdateSelection_ApplicantLastWriteWinsAndToggle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	advanceToBooking(t, svc)

	view, err := svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{ApplicantID: ptr.Ptr("a1")})
	require.NoError(t, err)
	assert.Equal(t, "a1", view.Booking.SelectedApplicantID)

	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{ApplicantID: ptr.Ptr("a2")})
	require.NoError(t, err)
	assert.Equal(t, "a2", view.Booking.SelectedApplicantID)
	for _, a := range view.Booking.Applicants {
		assert.Equal(t, a.ID == "a2", a.Selected)
	}

	// expand toggle is independent of selection
	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{ToggleApplicantID: ptr.Ptr("a1")})
	require.NoError(t, err)
	assert.True(t, view.Booking.Applicants[0].Expanded)
	assert.Equal(t, "a2", view.Booking.SelectedApplicantID)

	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{ToggleApplicantID: ptr.Ptr("a1")})
	require.NoError(t, err)
	assert.False(t, view.Booking.Applicants[0].Expanded)
}

func TestUpdateSelection_CanContinueRequiresBoth(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	view := advanceToBooking(t, svc)
	assert.False(t, view.Booking.CanContinue)

	view, err := svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("m-09:00")})
	require.NoError(t, err)
	assert.False(t, view.Booking.CanContinue)

	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{ApplicantID: ptr.Ptr("a2")})
	require.NoError(t, err)
	assert.True(t, view.Booking.CanContinue)

	// clearing the slot via a day change drops the readiness again
	view, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{DayIndex: ptr.Ptr(0)})
	require.NoError(t, err)
	assert.False(t, view.Booking.CanContinue)
}

func TestUpdateSelection_InvalidValues(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	advanceToBooking(t, svc)

	_, err := svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{Session: ptr.Ptr("evening")})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{DayIndex: ptr.Ptr(7)})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{SlotID: ptr.Ptr("m-23:00")})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	_, err = svc.UpdateSelection(ctx, testToken, &models.SelectionUpdate{ApplicantID: ptr.Ptr("a9")})
	assert.ErrorIs(t, err, ErrInvalidSelection)
}

func TestTransition_GoToDashboardResetsRunAndReleasesHandles(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	_, err := svc.Transition(ctx, testToken, domain.ActionAdvance)
	require.NoError(t, err)
	_, err = svc.UploadDocument(ctx, testToken, "id", "CIN", "id.pdf", "application/pdf", []byte("a"))
	require.NoError(t, err)
	require.Equal(t, 1, blobs.Len())

	view, err := svc.Transition(ctx, testToken, domain.ActionGoToDashboard)
	require.NoError(t, err)

	assert.Equal(t, domain.StepDemographic.String(), view.StepName)
	assert.Equal(t, 0, blobs.Len(), "wizard exit must free all file handles")
	assert.Nil(t, view.Booking)
	assert.False(t, view.Documents[0].HasFile)
}

func TestBookingDays_WrongStep(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.BookingDays(context.Background(), testToken)
	assert.ErrorIs(t, err, ErrWrongStep)
}
