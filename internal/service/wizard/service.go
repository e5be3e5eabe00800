package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	sessionRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/session"
	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/service/wizard/models"
	generateSlots "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/usecase/generate_slots"
)

// Service owns the wizard state machine. Every mutation goes through the
// session store's Update, so a wizard run only ever has one writer at a
// time and each transition is an atomic state replacement.
type Service struct {
	sessions SessionStore
	refData  ReferenceData
	blobs    BlobStore
	slotGen  SlotGenerator
	settings BookingSettings
	logger   Logger
}

// NewService creates the wizard service
func NewService(
	sessions SessionStore,
	refData ReferenceData,
	blobs BlobStore,
	slotGen SlotGenerator,
	settings BookingSettings,
	logger Logger,
) *Service {
	return &Service{
		sessions: sessions,
		refData:  refData,
		blobs:    blobs,
		slotGen:  slotGen,
		settings: settings,
		logger:   logger,
	}
}

// NewRun builds a fresh wizard state for a new session: demographic step,
// empty form, upload slots from reference data, no booking data yet.
func (s *Service) NewRun(ctx context.Context) *domain.WizardState {
	return &domain.WizardState{
		Step:        domain.StepDemographic,
		Documents:   s.refData.DocumentSlots(ctx),
		PreviewKind: domain.PreviewNone,
	}
}

// GetState returns the current wizard view for a session
func (s *Service) GetState(ctx context.Context, token string) (*models.WizardView, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetState: %v", ErrInternal, err)
	}
	return models.FromDomainWizard(session.Wizard), nil
}

// Transition applies one action to the state machine. goToDashboard exits
// the wizard entirely: all file handles are released and the run resets.
func (s *Service) Transition(ctx context.Context, token string, action domain.WizardAction) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		w := session.Wizard

		if action == domain.ActionGoToDashboard {
			s.releaseAllHandles(ctx, w)
			session.Wizard = s.NewRun(ctx)
			s.logger.Info("Transition: session=%s exited wizard to dashboard", token)
			view = models.FromDomainWizard(session.Wizard)
			return nil
		}

		if err := applyTransition(w, action); err != nil {
			s.logger.Warn("Transition: session=%s action=%s rejected: %v", token, action, err)
			return err
		}

		// Entering the booking step generates the day window and the
		// session slots exactly once per run.
		if w.Step == domain.StepBooking && !w.HasBookingData() {
			if err := s.generateBookingData(ctx, w); err != nil {
				return err
			}
		}

		s.logger.Info("Transition: session=%s action=%s -> step=%s preview=%t selectingSlots=%t",
			token, action, w.Step, w.UploadPreview, w.SelectingSlots)
		view = models.FromDomainWizard(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SaveDemographics merges form values into the wizard. Changing the parish
// clears the dependent city value. No validation guard is enforced here:
// the mockup lets the demographic step advance freely.
func (s *Service) SaveDemographics(ctx context.Context, token string, upd *models.DemographicsUpdate) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		d := &session.Wizard.Demographics

		if upd.Parish != nil && *upd.Parish != d.Parish {
			d.City = ""
		}

		setIf(&d.FullName, upd.FullName)
		setIf(&d.DateOfBirth, upd.DateOfBirth)
		setIf(&d.Age, upd.Age)
		setIf(&d.Gender, upd.Gender)
		setIf(&d.ResidenceStatus, upd.ResidenceStatus)
		setIf(&d.Address, upd.Address)
		setIf(&d.Region, upd.Region)
		setIf(&d.Parish, upd.Parish)
		setIf(&d.City, upd.City)
		setIf(&d.Zone, upd.Zone)
		setIf(&d.PostalCode, upd.PostalCode)
		setIf(&d.Phone, upd.Phone)
		setIf(&d.Email, upd.Email)

		s.logger.Info("SaveDemographics: session=%s name=%q parish=%q", token, d.FullName, d.Parish)
		view = models.FromDomainWizard(session.Wizard)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// SelectLanguages sets the data-capture languages. English is mandatory
// and always included; between one and two languages may be selected.
func (s *Service) SelectLanguages(ctx context.Context, token string, codes []string) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		known := make(map[string]domain.Language)
		for _, l := range s.refData.Languages(ctx) {
			known[l.Code] = l
		}

		selected := make([]string, 0, len(codes)+1)
		seen := make(map[string]bool)
		for _, code := range codes {
			if _, ok := known[code]; !ok {
				return fmt.Errorf("%w: unknown language %q", ErrInvalidLanguages, code)
			}
			if !seen[code] {
				seen[code] = true
				selected = append(selected, code)
			}
		}

		// English is mandatory
		if !seen["eng"] {
			selected = append([]string{"eng"}, selected...)
		}

		if len(selected) < domain.MinLanguages {
			return fmt.Errorf("%w: please select at least %d language", ErrInvalidLanguages, domain.MinLanguages)
		}
		if len(selected) > domain.MaxLanguages {
			return fmt.Errorf("%w: you can select maximum %d languages", ErrInvalidLanguages, domain.MaxLanguages)
		}

		session.Wizard.DataCaptureLanguages = selected
		s.logger.Info("SelectLanguages: session=%s languages=%v", token, selected)
		view = models.FromDomainWizard(session.Wizard)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UploadDocument attaches a file to an upload slot. A replaced file's
// handle is released before the new one is stored, and the new document
// becomes the active preview, mirroring the portal's auto-preview.
func (s *Service) UploadDocument(ctx context.Context, token, key, docType, fileName, contentType string, data []byte) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		w := session.Wizard
		if w.Step != domain.StepUpload {
			return ErrWrongStep
		}

		doc := w.DocumentByKey(key)
		if doc == nil {
			return ErrDocumentNotFound
		}

		handle, err := s.blobs.Put(ctx, fileName, contentType, data)
		if err != nil {
			s.logger.Error("UploadDocument: session=%s key=%s blob store: %v", token, key, err)
			return fmt.Errorf("%w: store file: %v", ErrInternal, err)
		}

		if doc.FileHandle != "" {
			if err := s.blobs.Release(ctx, doc.FileHandle); err != nil {
				s.logger.Error("UploadDocument: session=%s key=%s release previous handle: %v", token, key, err)
			}
		}

		doc.DocType = docType
		doc.FileName = fileName
		doc.FileHandle = handle

		w.PreviewTitle = doc.Title
		w.PreviewKind = domain.PreviewKindForFile(fileName)

		s.logger.Info("UploadDocument: session=%s key=%s file=%q kind=%s", token, key, fileName, w.PreviewKind)
		view = models.FromDomainWizard(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// DeleteDocument detaches the file of an upload slot, releasing its handle
// exactly once. If the removed document was being previewed, the preview
// resets to none.
func (s *Service) DeleteDocument(ctx context.Context, token, key string) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		w := session.Wizard
		if w.Step != domain.StepUpload {
			return ErrWrongStep
		}

		doc := w.DocumentByKey(key)
		if doc == nil {
			return ErrDocumentNotFound
		}
		if doc.FileHandle == "" {
			return ErrNoFileAttached
		}

		if err := s.blobs.Release(ctx, doc.FileHandle); err != nil {
			s.logger.Error("DeleteDocument: session=%s key=%s release handle: %v", token, key, err)
		}
		doc.FileHandle = ""
		doc.FileName = ""
		doc.DocType = ""

		if w.PreviewTitle == doc.Title {
			w.PreviewTitle = ""
			w.PreviewKind = domain.PreviewNone
		}

		s.logger.Info("DeleteDocument: session=%s key=%s removed", token, key)
		view = models.FromDomainWizard(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// BookingDays returns the booking view, generating days and slots when the
// step is entered through a direct fetch before any transition did it.
func (s *Service) BookingDays(ctx context.Context, token string) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		w := session.Wizard
		if w.Step != domain.StepBooking {
			return ErrWrongStep
		}
		if !w.HasBookingData() {
			if err := s.generateBookingData(ctx, w); err != nil {
				return err
			}
		}
		view = models.FromDomainWizard(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateSelection applies booking selection changes: session, then day,
// then slot, then applicant, then expand toggles. Day and session changes
// always clear the slot selection, even when reselecting the active value.
// Selecting a full slot is a silent no-op.
func (s *Service) UpdateSelection(ctx context.Context, token string, upd *models.SelectionUpdate) (*models.WizardView, error) {
	var view *models.WizardView

	err := s.update(ctx, token, func(session *domain.PortalSession) error {
		w := session.Wizard
		if w.Step != domain.StepBooking {
			return ErrWrongStep
		}

		if upd.Session != nil {
			sess := domain.Session(*upd.Session)
			if !sess.IsValid() {
				return fmt.Errorf("%w: unknown session %q", ErrInvalidSelection, *upd.Session)
			}
			w.SelectedSession = sess
			w.ClearSlotSelection()
		}

		if upd.DayIndex != nil {
			if *upd.DayIndex < 0 || *upd.DayIndex >= len(w.Days) {
				return fmt.Errorf("%w: day index %d out of range", ErrInvalidSelection, *upd.DayIndex)
			}
			w.SelectedDayIndex = *upd.DayIndex
			w.ClearSlotSelection()
		}

		if upd.SlotID != nil {
			slot := w.SlotByID(*upd.SlotID)
			if slot == nil {
				return fmt.Errorf("%w: unknown slot %q", ErrInvalidSelection, *upd.SlotID)
			}
			if slot.IsFull() {
				// disabled-action semantics: no error, no state change
				s.logger.Info("UpdateSelection: session=%s slot=%s is full, selection unchanged", token, slot.ID)
			} else {
				w.SelectedSlotID = slot.ID
			}
		}

		if upd.ApplicantID != nil {
			if w.ApplicantByID(*upd.ApplicantID) == nil {
				return fmt.Errorf("%w: unknown applicant %q", ErrInvalidSelection, *upd.ApplicantID)
			}
			// single selection, last write wins
			w.SelectedApplicantID = *upd.ApplicantID
		}

		if upd.ToggleApplicantID != nil {
			a := w.ApplicantByID(*upd.ToggleApplicantID)
			if a == nil {
				return fmt.Errorf("%w: unknown applicant %q", ErrInvalidSelection, *upd.ToggleApplicantID)
			}
			a.Expanded = !a.Expanded
		}

		s.logger.Info("UpdateSelection: session=%s day=%d session=%s slot=%q applicant=%q",
			token, w.SelectedDayIndex, w.SelectedSession, w.SelectedSlotID, w.SelectedApplicantID)
		view = models.FromDomainWizard(w)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// generateBookingData runs the slot generator once for this wizard run
func (s *Service) generateBookingData(ctx context.Context, w *domain.WizardState) error {
	resp, err := s.slotGen.Execute(ctx, &generateSlots.Request{
		Sessions:        s.settings.Sessions,
		DurationMinutes: s.settings.DurationMinutes,
		Capacity:        s.settings.Capacity,
		VisibleDays:     s.settings.VisibleDays,
	})
	if err != nil {
		s.logger.Error("generateBookingData: %v", err)
		return fmt.Errorf("%w: generate slots: %v", ErrInternal, err)
	}

	w.Days = resp.Days
	w.Slots = resp.Slots
	w.Applicants = s.refData.Applicants(ctx)
	w.SelectedSession = domain.SessionMorning
	w.SelectedDayIndex = 0
	w.ClearSlotSelection()
	w.SelectedApplicantID = ""

	if centres := s.refData.Centres(ctx); len(centres) > 0 {
		w.CentreID = centres[0].ID
	}

	return nil
}

// releaseAllHandles frees every live document handle of a run (teardown)
func (s *Service) releaseAllHandles(ctx context.Context, w *domain.WizardState) {
	for _, d := range w.Documents {
		if d.FileHandle == "" {
			continue
		}
		if err := s.blobs.Release(ctx, d.FileHandle); err != nil {
			s.logger.Error("releaseAllHandles: key=%s: %v", d.Key, err)
		}
		d.FileHandle = ""
	}
}

// update wraps the store Update call, mapping the not-found sentinel
func (s *Service) update(ctx context.Context, token string, fn func(*domain.PortalSession) error) error {
	err := s.sessions.Update(ctx, token, fn)
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	return err
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
