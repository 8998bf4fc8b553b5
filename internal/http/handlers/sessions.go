package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/pkg/problem"
)

type SessionHandler struct {
	Svc core.SessionService
	Log *slog.Logger
}

func NewSessionHandler(svc core.SessionService, log *slog.Logger) *SessionHandler {
	return &SessionHandler{Svc: svc, Log: log}
}

func (h *SessionHandler) Mount(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.Start)
		r.Get("/{session_id}", h.Get)
		r.Post("/{session_id}/answers", h.Answer)

		// Navigation actions
		r.Post("/{session_id}:next", h.Next)
		r.Post("/{session_id}:back", h.Back)
		r.Post("/{session_id}:restart", h.Restart)

		// Entity management
		r.Post("/{session_id}/drivers:count", h.SetDriverCount)
		r.Post("/{session_id}/drivers", h.AddDriver)
		r.Delete("/{session_id}/drivers/{driver_id}", h.RemoveDriver)
		r.Post("/{session_id}/drivers/{driver_id}:activate", h.ActivateDriver)
		r.Post("/{session_id}/vehicles:count", h.SetVehicleCount)
		r.Post("/{session_id}/vehicles", h.AddVehicle)
		r.Delete("/{session_id}/vehicles/{vehicle_id}", h.RemoveVehicle)
		r.Post("/{session_id}/vehicles/{vehicle_id}:activate", h.ActivateVehicle)

		// Live estimate, recomputed on every call
		r.Get("/{session_id}/estimate", h.Estimate)
	})
}

// sessionView is the wire shape of a session: enough for a widget to render
// the current screen without knowing the catalog.
type sessionView struct {
	ID              string         `json:"id"`
	Phase           core.Phase     `json:"phase"`
	Drivers         []entityView   `json:"drivers"`
	Vehicles        []entityView   `json:"vehicles"`
	ActiveDriverID  string         `json:"active_driver_id"`
	ActiveVehicleID string         `json:"active_vehicle_id"`
	Question        *core.Question `json:"question,omitempty"`
	Answer          []string       `json:"answer,omitempty"`
	CanContinue     bool           `json:"can_continue"`
	Progress        progressView   `json:"progress"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

type entityView struct {
	ID       string `json:"id"`
	Primary  bool   `json:"primary"`
	Answered int    `json:"answered"`
}

type progressView struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

func (h *SessionHandler) view(s core.Session) sessionView {
	qn := h.Svc.Questionnaire()
	v := sessionView{
		ID:              s.ID,
		Phase:           s.Phase,
		ActiveDriverID:  s.ActiveDriverID,
		ActiveVehicleID: s.ActiveVehicleID,
		CanContinue:     qn.CanContinue(&s),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	for _, d := range s.Drivers {
		v.Drivers = append(v.Drivers, entityView{ID: d.ID, Primary: d.IsPrimary, Answered: len(d.Answers)})
	}
	for _, veh := range s.Vehicles {
		v.Vehicles = append(v.Vehicles, entityView{ID: veh.ID, Primary: veh.IsPrimary, Answered: len(veh.Answers)})
	}
	if q, ok := qn.CurrentQuestion(&s); ok {
		v.Question = &q
		v.Answer = qn.CurrentAnswer(&s)
	}
	v.Progress.Completed, v.Progress.Total = qn.Progress(&s)
	return v
}

func (h *SessionHandler) writeSession(w http.ResponseWriter, s core.Session, status int) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(h.view(s)); err != nil {
		h.Log.Error("failed to encode session", "session_id", s.ID, "err", err)
	}
}

// Start opens a fresh questionnaire session.
// 201: JSON; 500: internal error.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Start(r.Context())
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to start session")
		return
	}
	h.writeSession(w, s, http.StatusCreated)
}

// Get retrieves the session's current screen state.
// 200: JSON; 404: not found; 500: internal error.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	s, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get session")
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// Answer records an option for the current question.
// 200: JSON; 400: bad option; 404: not found; 409: no current question.
func (h *SessionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")

	var req struct {
		OptionID string `json:"option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Request Body", "Body must be JSON with an option_id field.")
		return
	}

	s, err := h.Svc.Answer(r.Context(), id, req.OptionID)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// Next advances the questionnaire.
// 200: JSON; 400: current question unanswered; 404: not found; 409: complete.
func (h *SessionHandler) Next(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Next(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// Back moves to the previous screen.
// 200: JSON; 404: not found; 409: already at the first screen.
func (h *SessionHandler) Back(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Back(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// Restart resets the session to its initial state.
// 200: JSON; 404: not found.
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.Restart(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

func (h *SessionHandler) decodeCount(w http.ResponseWriter, r *http.Request) (int, bool) {
	var req struct {
		Count int `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, http.StatusBadRequest, "Invalid Request Body", "Body must be JSON with a count field.")
		return 0, false
	}
	return req.Count, true
}

// SetDriverCount re-materializes the driver list from the count screen.
// 200: JSON; 400: count out of range; 404: not found; 409: wrong phase.
func (h *SessionHandler) SetDriverCount(w http.ResponseWriter, r *http.Request) {
	count, ok := h.decodeCount(w, r)
	if !ok {
		return
	}
	s, err := h.Svc.SetDriverCount(r.Context(), chi.URLParam(r, "session_id"), count)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// SetVehicleCount re-materializes the vehicle list from the count screen.
// 200: JSON; 400: count out of range; 404: not found; 409: wrong phase.
func (h *SessionHandler) SetVehicleCount(w http.ResponseWriter, r *http.Request) {
	count, ok := h.decodeCount(w, r)
	if !ok {
		return
	}
	s, err := h.Svc.SetVehicleCount(r.Context(), chi.URLParam(r, "session_id"), count)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// AddDriver appends a driver.
// 200: JSON; 400: driver limit reached; 404: not found.
func (h *SessionHandler) AddDriver(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.AddDriver(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// RemoveDriver removes a non-primary driver.
// 200: JSON; 400: primary driver; 404: not found.
func (h *SessionHandler) RemoveDriver(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.RemoveDriver(r.Context(),
		chi.URLParam(r, "session_id"), chi.URLParam(r, "driver_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// ActivateDriver switches the active driver tab.
// 200: JSON; 404: not found.
func (h *SessionHandler) ActivateDriver(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.ActivateDriver(r.Context(),
		chi.URLParam(r, "session_id"), chi.URLParam(r, "driver_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// AddVehicle appends a vehicle.
// 200: JSON; 400: vehicle limit reached; 404: not found.
func (h *SessionHandler) AddVehicle(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.AddVehicle(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// RemoveVehicle removes a non-primary vehicle.
// 200: JSON; 400: primary vehicle; 404: not found.
func (h *SessionHandler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.RemoveVehicle(r.Context(),
		chi.URLParam(r, "session_id"), chi.URLParam(r, "vehicle_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// ActivateVehicle switches the active vehicle tab.
// 200: JSON; 404: not found.
func (h *SessionHandler) ActivateVehicle(w http.ResponseWriter, r *http.Request) {
	s, err := h.Svc.ActivateVehicle(r.Context(),
		chi.URLParam(r, "session_id"), chi.URLParam(r, "vehicle_id"))
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}
	h.writeSession(w, s, http.StatusOK)
}

// Estimate recomputes the live pricing result for the session.
// 200: JSON; 404: not found.
func (h *SessionHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session_id")
	result, err := h.Svc.Estimate(r.Context(), id)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to compute estimate")
		return
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.Log.Error("failed to encode estimate", "session_id", id, "err", err)
	}
}
