package core

import (
	"context"
	"errors"
	"fmt"
)

// SessionService is the transactional surface the HTTP layer drives: load a
// session, apply one questionnaire transition, save, and return the updated
// session. The pricing result is recomputed from scratch on demand.
type SessionService interface {
	Start(ctx context.Context) (Session, error)
	Get(ctx context.Context, id string) (Session, error)
	Answer(ctx context.Context, id, optionID string) (Session, error)
	Next(ctx context.Context, id string) (Session, error)
	Back(ctx context.Context, id string) (Session, error)
	Restart(ctx context.Context, id string) (Session, error)

	SetDriverCount(ctx context.Context, id string, count int) (Session, error)
	SetVehicleCount(ctx context.Context, id string, count int) (Session, error)
	AddDriver(ctx context.Context, id string) (Session, error)
	RemoveDriver(ctx context.Context, id, driverID string) (Session, error)
	AddVehicle(ctx context.Context, id string) (Session, error)
	RemoveVehicle(ctx context.Context, id, vehicleID string) (Session, error)
	ActivateDriver(ctx context.Context, id, driverID string) (Session, error)
	ActivateVehicle(ctx context.Context, id, vehicleID string) (Session, error)

	// Estimate recomputes the live pricing result for the session.
	Estimate(ctx context.Context, id string) (PricingResult, error)

	// Questionnaire exposes the controller for view assembly.
	Questionnaire() *Questionnaire
}

type sessionService struct {
	sessions SessionRepo
	qn       *Questionnaire
	engine   *PricingEngine
}

func NewSessionService(sessions SessionRepo, qn *Questionnaire, engine *PricingEngine) SessionService {
	return &sessionService{sessions: sessions, qn: qn, engine: engine}
}

func (svc *sessionService) Questionnaire() *Questionnaire { return svc.qn }

func (svc *sessionService) Start(ctx context.Context) (Session, error) {
	s := svc.qn.NewSession()
	if err := svc.sessions.Create(ctx, s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (svc *sessionService) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, fmt.Errorf("%w: missing session ID", ErrValidation)
	}
	s, err := svc.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, err
	}
	return s, nil
}

// apply runs one transition against a loaded session and saves the result.
func (svc *sessionService) apply(ctx context.Context, id string, fn func(*Session) error) (Session, error) {
	s, err := svc.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if err := fn(&s); err != nil {
		return Session{}, err
	}
	if err := svc.sessions.Save(ctx, s); err != nil {
		return Session{}, err
	}
	return s, nil
}

func (svc *sessionService) Answer(ctx context.Context, id, optionID string) (Session, error) {
	if optionID == "" {
		return Session{}, fmt.Errorf("%w: missing option ID", ErrValidation)
	}
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.Select(s, optionID) })
}

func (svc *sessionService) Next(ctx context.Context, id string) (Session, error) {
	return svc.apply(ctx, id, svc.qn.Next)
}

func (svc *sessionService) Back(ctx context.Context, id string) (Session, error) {
	return svc.apply(ctx, id, svc.qn.Back)
}

func (svc *sessionService) Restart(ctx context.Context, id string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error {
		svc.qn.Restart(s)
		return nil
	})
}

func (svc *sessionService) SetDriverCount(ctx context.Context, id string, count int) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.SetDriverCount(s, count) })
}

func (svc *sessionService) SetVehicleCount(ctx context.Context, id string, count int) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.SetVehicleCount(s, count) })
}

func (svc *sessionService) AddDriver(ctx context.Context, id string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error {
		_, err := svc.qn.AddDriver(s)
		return err
	})
}

func (svc *sessionService) RemoveDriver(ctx context.Context, id, driverID string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.RemoveDriver(s, driverID) })
}

func (svc *sessionService) AddVehicle(ctx context.Context, id string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error {
		_, err := svc.qn.AddVehicle(s)
		return err
	})
}

func (svc *sessionService) RemoveVehicle(ctx context.Context, id, vehicleID string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.RemoveVehicle(s, vehicleID) })
}

func (svc *sessionService) ActivateDriver(ctx context.Context, id, driverID string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.ActivateDriver(s, driverID) })
}

func (svc *sessionService) ActivateVehicle(ctx context.Context, id, vehicleID string) (Session, error) {
	return svc.apply(ctx, id, func(s *Session) error { return svc.qn.ActivateVehicle(s, vehicleID) })
}

func (svc *sessionService) Estimate(ctx context.Context, id string) (PricingResult, error) {
	s, err := svc.Get(ctx, id)
	if err != nil {
		return PricingResult{}, err
	}
	return svc.engine.Calculate(s.Drivers, s.Vehicles, s.PolicyAnswers), nil
}
