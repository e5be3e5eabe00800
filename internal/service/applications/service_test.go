package applications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
	appRepo "github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/infra/storage/applications"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	store := appRepo.NewRepository([]domain.ApplicationItem{
		{ID: "61390154910601", Name: "Ravi S.", Status: domain.StatusIncomplete, Languages: "English"},
		{ID: "61390154910605", Name: "Aisha K.", Status: domain.StatusCompleted, Languages: "English, français"},
		{ID: "61390154910603", Name: "Gyuguu", Status: domain.StatusDraft, Languages: "English"},
	})
	return NewService(store, nopLogger{})
}

func ids(items []domain.ApplicationItem) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.ID)
	}
	return out
}

func TestList_DefaultSortIsNewestFirst(t *testing.T) {
	svc := newTestService()

	items, err := svc.List(context.Background(), domain.ApplicationFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"61390154910605", "61390154910603", "61390154910601"}, ids(items))
}

func TestList_SortModes(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		sort domain.ApplicationSort
		want []string
	}{
		{name: "oldest", sort: domain.SortOldest, want: []string{"61390154910601", "61390154910603", "61390154910605"}},
		{name: "name ascending", sort: domain.SortNameAsc, want: []string{"61390154910605", "61390154910603", "61390154910601"}},
		{name: "name descending", sort: domain.SortNameDesc, want: []string{"61390154910601", "61390154910603", "61390154910605"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.List(ctx, domain.ApplicationFilter{Sort: tt.sort})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(items))
		})
	}
}

func TestList_StatusFilter(t *testing.T) {
	svc := newTestService()

	completed := domain.StatusCompleted
	items, err := svc.List(context.Background(), domain.ApplicationFilter{Status: &completed})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "61390154910605", items[0].ID)

	bad := domain.ApplicationStatus("Pending")
	_, err = svc.List(context.Background(), domain.ApplicationFilter{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestList_SearchIsCaseInsensitive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// by name
	items, err := svc.List(ctx, domain.ApplicationFilter{Search: "ravi"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ravi S.", items[0].Name)

	// by id fragment
	items, err = svc.List(ctx, domain.ApplicationFilter{Search: "910603"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Gyuguu", items[0].Name)

	// by language
	items, err = svc.List(ctx, domain.ApplicationFilter{Search: "FRANÇAIS"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Aisha K.", items[0].Name)

	// no match
	items, err = svc.List(ctx, domain.ApplicationFilter{Search: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestList_InvalidSort(t *testing.T) {
	svc := newTestService()
	_, err := svc.List(context.Background(), domain.ApplicationFilter{Sort: "RANDOM"})
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestSelectAndDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.Select(ctx, "61390154910601"))
	assert.ErrorIs(t, svc.Select(ctx, "nope"), ErrApplicationNotFound)

	require.NoError(t, svc.Delete(ctx, "61390154910601"))
	assert.ErrorIs(t, svc.Delete(ctx, "61390154910601"), ErrApplicationNotFound)
}
