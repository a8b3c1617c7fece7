package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/lifemap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelineRepo_CreateAndGetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimelineRepo(db)
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tl := testutil.NewTestTimeline("career", testutil.WithUpdatedAt(created))
	tl.CreatedAt = created
	require.NoError(t, repo.Create(ctx, tl))

	got, err := repo.GetByName(ctx, "career")
	require.NoError(t, err)
	assert.Equal(t, tl.ID, got.ID)
	assert.Equal(t, "career", got.Name)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.True(t, created.Equal(got.UpdatedAt))
}

func TestTimelineRepo_GetByName_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimelineRepo(db)

	_, err := repo.GetByName(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestTimelineRepo_Create_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimelineRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTimeline("career")))
	err := repo.Create(ctx, testutil.NewTestTimeline("career"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTimelineRepo_ListSortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimelineRepo(db)
	ctx := context.Background()

	for _, name := range []string{"health", "career", "money"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestTimeline(name)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "career", list[0].Name)
	assert.Equal(t, "health", list[1].Name)
	assert.Equal(t, "money", list[2].Name)
}

func TestTimelineRepo_Touch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimelineRepo(db)
	ctx := context.Background()

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	tl := testutil.NewTestTimeline("career", testutil.WithUpdatedAt(old))
	require.NoError(t, repo.Create(ctx, tl))

	require.NoError(t, repo.Touch(ctx, tl.ID))
	got, err := repo.GetByName(ctx, "career")
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(old))

	assert.ErrorIs(t, repo.Touch(ctx, "missing"), ErrNotFound)
}

func TestTimelineRepo_Rename(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimelineRepo(db)
	ctx := context.Background()

	a := testutil.NewTestTimeline("a")
	b := testutil.NewTestTimeline("b")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.Rename(ctx, a.ID, "c"))
	got, err := repo.GetByName(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	assert.ErrorIs(t, repo.Rename(ctx, a.ID, "b"), ErrConflict)
	assert.ErrorIs(t, repo.Rename(ctx, "missing", "z"), ErrNotFound)
}

func TestTimelineRepo_DeleteCascadesGoals(t *testing.T) {
	db := testutil.NewTestDB(t)
	timelines := NewSQLiteTimelineRepo(db)
	goals := NewSQLiteGoalRepo(db)
	ctx := context.Background()

	tl := testutil.NewTestTimeline("career")
	require.NoError(t, timelines.Create(ctx, tl))
	require.NoError(t, goals.ReplaceTree(ctx, tl.ID, testutil.NewLifeTree()))

	require.NoError(t, timelines.Delete(ctx, tl.ID))
	n, _, err := goals.CountByTimeline(ctx, tl.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = timelines.GetByName(ctx, "career")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, timelines.Delete(ctx, tl.ID), ErrNotFound)
}
