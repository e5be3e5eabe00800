package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

func seedSession(token string) *domain.PortalSession {
	return &domain.PortalSession{
		Token: token,
		Wizard: &domain.WizardState{
			Step:                 domain.StepUpload,
			DataCaptureLanguages: []string{"eng"},
			Documents: []*domain.Document{
				{Key: "id", Title: "Identity Proof", FileHandle: "h1"},
			},
		},
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, seedSession("t1")))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", got.Token)
	assert.Equal(t, domain.StepUpload, got.Wizard.Step)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, repo.Save(ctx, nil), ErrNilSession)
}

func TestRepository_GetReturnsIsolatedCopy(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, seedSession("t1")))

	snapshot, err := repo.Get(ctx, "t1")
	require.NoError(t, err)

	// mutating the snapshot must not leak into the stored session
	snapshot.Wizard.Step = domain.StepConfirmation
	snapshot.Wizard.DataCaptureLanguages[0] = "fra"
	snapshot.Wizard.Documents[0].FileHandle = "tampered"

	fresh, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepUpload, fresh.Wizard.Step)
	assert.Equal(t, "eng", fresh.Wizard.DataCaptureLanguages[0])
	assert.Equal(t, "h1", fresh.Wizard.Documents[0].FileHandle)
}

func TestRepository_UpdateMutatesLiveState(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, seedSession("t1")))

	err := repo.Update(ctx, "t1", func(s *domain.PortalSession) error {
		s.Wizard.Step = domain.StepBooking
		return nil
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepBooking, got.Wizard.Step)

	assert.ErrorIs(t, repo.Update(ctx, "missing", func(*domain.PortalSession) error {
		return nil
	}), ErrSessionNotFound)
}

func TestRepository_UpdateErrorLeavesNoPartialVisibility(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, seedSession("t1")))

	wantErr := assert.AnError
	err := repo.Update(ctx, "t1", func(s *domain.PortalSession) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, seedSession("t1")))

	removed, err := repo.Delete(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "t1", removed.Token)

	_, err = repo.Get(ctx, "t1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = repo.Delete(ctx, "t1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
