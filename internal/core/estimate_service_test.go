package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEstimateRepo struct {
	created []Estimate
	byID    map[string]Estimate
}

func newFakeEstimateRepo() *fakeEstimateRepo {
	return &fakeEstimateRepo{byID: map[string]Estimate{}}
}

func (r *fakeEstimateRepo) Create(_ context.Context, e Estimate) error {
	if _, ok := r.byID[e.ID]; ok {
		return ErrConflict
	}
	r.created = append(r.created, e)
	r.byID[e.ID] = e
	return nil
}

func (r *fakeEstimateRepo) Get(_ context.Context, id string) (Estimate, error) {
	e, ok := r.byID[id]
	if !ok {
		return Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (r *fakeEstimateRepo) FindRecent(_ context.Context, limit int) ([]Estimate, error) {
	if len(r.created) > limit {
		return r.created[:limit], nil
	}
	return r.created, nil
}

func (r *fakeEstimateRepo) ExpireEstimates(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func completedSession(t *testing.T, qn *Questionnaire) Session {
	t.Helper()
	s := qn.NewSession()
	require.NoError(t, qn.Next(&s))
	answerPhase(t, qn, &s)
	require.NoError(t, qn.Next(&s))
	answerPhase(t, qn, &s)
	answerPhase(t, qn, &s)
	require.Equal(t, PhaseResults, s.Phase)
	return s
}

func TestEstimateService_Snapshot(t *testing.T) {
	engine := newTestEngine(t)
	qn := NewQuestionnaire(engine.Catalog())
	repo := newFakeEstimateRepo()
	svc := NewEstimateService(engine, repo)

	t.Run("rejects incomplete sessions", func(t *testing.T) {
		s := qn.NewSession()
		_, err := svc.Snapshot(context.Background(), &s)
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.Empty(t, repo.created)
	})

	t.Run("persists a completed session's result", func(t *testing.T) {
		s := completedSession(t, qn)

		est, err := svc.Snapshot(context.Background(), &s)
		require.NoError(t, err)

		assert.NotEmpty(t, est.ID)
		assert.Equal(t, s.ID, est.SessionID)
		assert.Equal(t, EstimateStatusActive, est.Status)
		assert.Equal(t, len(s.Drivers), est.DriverCount)
		assert.Equal(t, len(s.Vehicles), est.VehicleCount)
		assert.Positive(t, est.Result.MonthlyPremium)
		assert.Equal(t, est.CreatedAt.AddDate(0, 0, EstimateValidityDays), est.ExpiresAt)
		assert.False(t, est.IsExpired(est.CreatedAt))
		assert.True(t, est.IsExpired(est.ExpiresAt.Add(time.Second)))

		// The state answer flows through; answerPhase picks the first
		// option of the state question.
		assert.Equal(t, "OK", est.State)

		require.Len(t, repo.created, 1)
		assert.Equal(t, est.ID, repo.created[0].ID)
	})
}

func TestEstimateService_Get(t *testing.T) {
	engine := newTestEngine(t)
	repo := newFakeEstimateRepo()
	svc := NewEstimateService(engine, repo)

	_, err := svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEstimateNotFound)
}

func TestEstimateService_ListRecent_NormalizesLimit(t *testing.T) {
	engine := newTestEngine(t)
	repo := newFakeEstimateRepo()
	svc := NewEstimateService(engine, repo)

	for i := 0; i < 25; i++ {
		require.NoError(t, repo.Create(context.Background(), Estimate{ID: string(rune('a' + i))}))
	}

	out, err := svc.ListRecent(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, out, 20)

	out, err = svc.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, out, 5)

	out, err = svc.ListRecent(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, out, 20)
}
