// Package memory holds the in-process stores. Questionnaire sessions live
// here exclusively: the respondent model is never written to shared
// storage, so the only session store is this one.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
)

type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]core.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]core.Session)}
}

func (r *SessionRepo) Create(_ context.Context, s core.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.ID]; exists {
		return core.ErrConflict
	}
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *SessionRepo) Get(_ context.Context, id string) (core.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return core.Session{}, core.ErrSessionNotFound
	}
	return cloneSession(s), nil
}

func (r *SessionRepo) Save(_ context.Context, s core.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[s.ID]; !ok {
		return core.ErrSessionNotFound
	}
	r.sessions[s.ID] = cloneSession(s)
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return core.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *SessionRepo) DeleteIdle(_ context.Context, before time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(before) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of live sessions, for logging and tests.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// cloneSession deep-copies the answer maps so callers cannot mutate stored
// state through a returned session.
func cloneSession(s core.Session) core.Session {
	out := s
	out.Drivers = make([]core.Driver, len(s.Drivers))
	for i, d := range s.Drivers {
		d.Answers = d.Answers.Clone()
		out.Drivers[i] = d
	}
	out.Vehicles = make([]core.Vehicle, len(s.Vehicles))
	for i, v := range s.Vehicles {
		v.Answers = v.Answers.Clone()
		out.Vehicles[i] = v
	}
	out.PolicyAnswers = s.PolicyAnswers.Clone()
	return out
}
