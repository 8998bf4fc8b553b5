package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	byID map[string]Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: map[string]Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, s Session) error {
	if _, ok := r.byID[s.ID]; ok {
		return ErrConflict
	}
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, id string) (Session, error) {
	s, ok := r.byID[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeSessionRepo) Save(_ context.Context, s Session) error {
	r.byID[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeSessionRepo) DeleteIdle(_ context.Context, _ time.Time) (int, error) {
	return 0, nil
}

func newTestSessionService(t *testing.T) (SessionService, *fakeSessionRepo) {
	t.Helper()
	engine := newTestEngine(t)
	qn := NewQuestionnaire(engine.Catalog())
	repo := newFakeSessionRepo()
	return NewSessionService(repo, qn, engine), repo
}

func TestSessionService_StartAndGet(t *testing.T) {
	svc, repo := newTestSessionService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, PhaseDriverCount, s.Phase)
	assert.Contains(t, repo.byID, s.ID)

	got, err := svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_TransitionsPersist(t *testing.T) {
	svc, repo := newTestSessionService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	s, err = svc.SetDriverCount(ctx, s.ID, 2)
	require.NoError(t, err)
	assert.Len(t, s.Drivers, 2)
	assert.Len(t, repo.byID[s.ID].Drivers, 2)

	s, err = svc.Next(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseDriverDetails, s.Phase)

	// Answer the pre-seeded relationship question with a different option.
	s, err = svc.Answer(ctx, s.ID, "spouse")
	require.NoError(t, err)
	assert.Equal(t, "spouse", s.Drivers[0].Answers.First(QuestionDriverRelationship))

	_, err = svc.Answer(ctx, s.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	s, err = svc.Back(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseDriverCount, s.Phase)

	s, err = svc.Restart(ctx, s.ID)
	require.NoError(t, err)
	assert.Len(t, s.Drivers, 1)
	assert.Equal(t, PhaseDriverCount, s.Phase)
}

func TestSessionService_FailedTransitionDoesNotSave(t *testing.T) {
	svc, repo := newTestSessionService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	// Wrong phase for a vehicle count change.
	_, err = svc.SetVehicleCount(ctx, s.ID, 3)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, repo.byID[s.ID].Vehicles, 1)
}

func TestSessionService_EntityOperations(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	s, err = svc.AddDriver(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, s.Drivers, 2)
	added := s.Drivers[1].ID

	s, err = svc.ActivateDriver(ctx, s.ID, added)
	require.NoError(t, err)
	assert.Equal(t, added, s.ActiveDriverID)

	s, err = svc.RemoveDriver(ctx, s.ID, added)
	require.NoError(t, err)
	assert.Len(t, s.Drivers, 1)
	assert.Equal(t, "driver-1", s.ActiveDriverID)

	_, err = svc.RemoveDriver(ctx, s.ID, "driver-1")
	assert.ErrorIs(t, err, ErrValidation)

	s, err = svc.AddVehicle(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, s.Vehicles, 2)

	s, err = svc.RemoveVehicle(ctx, s.ID, s.Vehicles[1].ID)
	require.NoError(t, err)
	assert.Len(t, s.Vehicles, 1)
}

func TestSessionService_Estimate(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	s, err := svc.Start(ctx)
	require.NoError(t, err)

	// A live estimate is available at any phase: unanswered questions are
	// neutral.
	result, err := svc.Estimate(ctx, s.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.MonthlyPremium, MinMonthlyPremium)
	assert.Equal(t, result.MonthlyPremium*12, result.AnnualPremium)

	_, err = svc.Estimate(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
