package applications

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamrujjamanali/mosip-pre-reg-mockup/internal/domain"
)

func seedItems() []domain.ApplicationItem {
	return []domain.ApplicationItem{
		{ID: "61390154910601", Name: "Gyuguu", Status: domain.StatusIncomplete},
		{ID: "61390154910602", Name: "Ravi S.", Status: domain.StatusCompleted},
		{ID: "61390154910603", Name: "Aisha K.", Status: domain.StatusDraft},
	}
}

func selectedID(items []domain.ApplicationItem) string {
	for _, a := range items {
		if a.Selected {
			return a.ID
		}
	}
	return ""
}

func TestRepository_ListIsACopy(t *testing.T) {
	repo := NewRepository(seedItems())
	ctx := context.Background()

	list := repo.List(ctx)
	require.Len(t, list, 3)
	list[0].Name = "tampered"

	assert.Equal(t, "Gyuguu", repo.List(ctx)[0].Name)
}

func TestRepository_SelectIsSingleSelect(t *testing.T) {
	repo := NewRepository(seedItems())
	ctx := context.Background()

	require.NoError(t, repo.Select(ctx, "61390154910601"))
	require.NoError(t, repo.Select(ctx, "61390154910603"))

	list := repo.List(ctx)
	assert.Equal(t, "61390154910603", selectedID(list))
	count := 0
	for _, a := range list {
		if a.Selected {
			count++
		}
	}
	assert.Equal(t, 1, count)

	assert.ErrorIs(t, repo.Select(ctx, "nope"), ErrApplicationNotFound)
}

func TestRepository_RemoveReselectsNeighbour(t *testing.T) {
	ctx := context.Background()

	t.Run("middle item moves selection to the next one", func(t *testing.T) {
		repo := NewRepository(seedItems())
		require.NoError(t, repo.Select(ctx, "61390154910602"))
		require.NoError(t, repo.Remove(ctx, "61390154910602"))

		list := repo.List(ctx)
		require.Len(t, list, 2)
		assert.Equal(t, "61390154910603", selectedID(list))
	})

	t.Run("last item moves selection to the new last", func(t *testing.T) {
		repo := NewRepository(seedItems())
		require.NoError(t, repo.Select(ctx, "61390154910603"))
		require.NoError(t, repo.Remove(ctx, "61390154910603"))

		list := repo.List(ctx)
		require.Len(t, list, 2)
		assert.Equal(t, "61390154910602", selectedID(list))
	})

	t.Run("unselected item keeps the current selection", func(t *testing.T) {
		repo := NewRepository(seedItems())
		require.NoError(t, repo.Select(ctx, "61390154910601"))
		require.NoError(t, repo.Remove(ctx, "61390154910603"))

		assert.Equal(t, "61390154910601", selectedID(repo.List(ctx)))
	})

	t.Run("removing the only item leaves an empty list", func(t *testing.T) {
		repo := NewRepository([]domain.ApplicationItem{
			{ID: "1", Name: "Only", Selected: true},
		})
		require.NoError(t, repo.Remove(ctx, "1"))
		assert.Empty(t, repo.List(ctx))
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := NewRepository(seedItems())
		assert.ErrorIs(t, repo.Remove(ctx, "nope"), ErrApplicationNotFound)
	})
}

func TestRepository_Add(t *testing.T) {
	repo := NewRepository(nil)
	ctx := context.Background()

	repo.Add(ctx, domain.ApplicationItem{ID: "61390154910699", Name: "New", Status: domain.StatusCompleted})

	list := repo.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "61390154910699", list[0].ID)
}
