package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

func testSession(id string, updatedAt time.Time) core.Session {
	return core.Session{
		ID:    id,
		Phase: core.PhaseDriverCount,
		Drivers: []core.Driver{{
			ID:        "driver-1",
			IsPrimary: true,
			Answers:   core.Answers{core.QuestionDriverRelationship: {"self"}},
		}},
		Vehicles:        []core.Vehicle{{ID: "vehicle-1", IsPrimary: true, Answers: core.Answers{}}},
		PolicyAnswers:   core.Answers{},
		ActiveDriverID:  "driver-1",
		ActiveVehicleID: "vehicle-1",
		CreatedAt:       updatedAt,
		UpdatedAt:       updatedAt,
	}
}

func TestSessionRepo_CRUD(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	now := time.Now()

	s := testSession("s1", now)
	require.NoError(t, repo.Create(ctx, s))
	assert.ErrorIs(t, repo.Create(ctx, s), core.ErrConflict)

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrNotFound)

	got.Phase = core.PhaseDriverDetails
	require.NoError(t, repo.Save(ctx, got))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, core.PhaseDriverDetails, got.Phase)

	assert.ErrorIs(t, repo.Save(ctx, testSession("missing", now)), core.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.ErrorIs(t, repo.Delete(ctx, "s1"), core.ErrNotFound)
	assert.Equal(t, 0, repo.Len())
}

func TestSessionRepo_ReturnsIsolatedCopies(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testSession("s1", time.Now())))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	got.Drivers[0].Answers["driver-age"] = []string{"16-17"}

	again, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, again.Drivers[0].Answers.Has("driver-age"),
		"mutating a returned session must not touch stored state")
}

func TestSessionRepo_DeleteIdle(t *testing.T) {
	repo := NewSessionRepo()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Create(ctx, testSession("fresh", now)))
	require.NoError(t, repo.Create(ctx, testSession("stale-1", now.Add(-3*time.Hour))))
	require.NoError(t, repo.Create(ctx, testSession("stale-2", now.Add(-2*time.Hour))))

	removed, err := repo.DeleteIdle(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, repo.Len())

	_, err = repo.Get(ctx, "fresh")
	assert.NoError(t, err)
	_, err = repo.Get(ctx, "stale-1")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
