package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	sessionRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/session"
)

// UseCase finalizes a wizard run: assigns the application id, decrements
// the chosen slot's capacity, publishes the completed application to the
// dashboard list and assembles the confirmation display payload.
//
// Capacity is decremented here rather than at selection time, so browsing
// never consumes spots; the decrement runs under the session store lock.
// Confirming an already confirmed run returns the stored values again
// without decrementing twice.
type UseCase struct {
	sessions     SessionStore
	refData      ReferenceData
	applications ApplicationStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the confirmation use case
func NewUseCase(
	sessions SessionStore,
	refData ReferenceData,
	applications ApplicationStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		refData:      refData,
		applications: applications,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// NewUseCaseWithTimeProvider creates the use case with an injected clock
func NewUseCaseWithTimeProvider(
	sessions SessionStore,
	refData ReferenceData,
	applications ApplicationStore,
	tp TimeProvider,
	logger Logger,
) *UseCase {
	uc := NewUseCase(sessions, refData, applications, logger)
	uc.timeProvider = tp
	return uc
}

// Execute confirms the booking of a wizard run
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	var resp *Response

	err := uc.sessions.Update(ctx, req.Token, func(session *domain.PortalSession) error {
		w := session.Wizard

		if w.Step != domain.StepConfirmation {
			uc.logger.Warn("ConfirmBooking: session=%s on step=%s", req.Token, w.Step)
			return ErrWrongStep
		}
		if !w.CanContinueBooking() {
			return ErrBookingIncomplete
		}

		slot := w.SlotByID(w.SelectedSlotID)
		applicant := w.ApplicantByID(w.SelectedApplicantID)
		if slot == nil || applicant == nil {
			return fmt.Errorf("%w: selection refers to unknown slot or applicant", ErrInternal)
		}
		if w.SelectedDayIndex < 0 || w.SelectedDayIndex >= len(w.Days) {
			return fmt.Errorf("%w: day index %d out of range", ErrInternal, w.SelectedDayIndex)
		}
		day := w.Days[w.SelectedDayIndex]

		centre, err := uc.refData.CentreByID(ctx, w.CentreID)
		if err != nil {
			return ErrCentreNotFound
		}

		firstConfirm := !w.Confirmed
		if firstConfirm {
			now := uc.timeProvider.Now()
			w.ApplicationID = newApplicationID(now)
			w.Confirmed = true
			w.ConfirmedAt = now

			// capacity consumed on confirm, not on selection
			if !slot.IsFull() {
				slot.Available--
			}

			uc.applications.Add(ctx, domain.ApplicationItem{
				ID:              w.ApplicationID,
				Name:            applicant.Name,
				AppointmentDate: day.Date.Format(domain.DateFormat),
				Status:          domain.StatusCompleted,
				Languages:       uc.languageLabels(ctx, w.DataCaptureLanguages),
			})

			uc.logger.Info("ConfirmBooking: session=%s app=%s slot=%s applicant=%s centre=%s",
				req.Token, w.ApplicationID, slot.ID, applicant.ID, centre.ID)
		} else {
			uc.logger.Info("ConfirmBooking: session=%s already confirmed app=%s, returning stored view",
				req.Token, w.ApplicationID)
		}

		dateTime := fmt.Sprintf("%s %s", day.Date.Format(domain.DateFormat), slot.StartTime)
		resp = &Response{
			ApplicationID: w.ApplicationID,
			ApplicantName: applicant.Name,
			DateText:      day.Date.Format(domain.DisplayDateFormat),
			SlotText:      fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime),
			SessionText:   string(slot.Session),
			CentreName:    centre.Name,
			CentreAddress: centre.Address,
			CentreContact: centre.Contact(),
			DateTime:      dateTime,
			QRPayload:     fmt.Sprintf("APP:%s|DT:%s|CENTER:%s", w.ApplicationID, dateTime, centre.Name),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return resp, nil
}

// newApplicationID derives a 14-digit numeric application id in the same
// shape the portal's seed data uses ("61390154910692")
func newApplicationID(now time.Time) string {
	return fmt.Sprintf("61%012d", now.UnixNano()%1_000_000_000_000)
}

func (uc *UseCase) languageLabels(ctx context.Context, codes []string) string {
	byCode := make(map[string]string)
	for _, l := range uc.refData.Languages(ctx) {
		byCode[l.Code] = l.Label
	}

	labels := make([]string, 0, len(codes))
	for _, c := range codes {
		if label, ok := byCode[c]; ok {
			labels = append(labels, label)
		}
	}
	if len(labels) == 0 {
		labels = append(labels, "English")
	}
	return strings.Join(labels, ", ")
}
