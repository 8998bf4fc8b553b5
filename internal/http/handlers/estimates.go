package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/pkg/problem"
)

type EstimateHandler struct {
	Sessions core.SessionService
	Svc      core.EstimateService
	Admin    func(http.Handler) http.Handler
	Log      *slog.Logger
}

func NewEstimateHandler(
	sessions core.SessionService,
	svc core.EstimateService,
	admin func(http.Handler) http.Handler,
	log *slog.Logger,
) *EstimateHandler {
	return &EstimateHandler{Sessions: sessions, Svc: svc, Admin: admin, Log: log}
}

func (h *EstimateHandler) Mount(r chi.Router) {
	// Snapshot a completed session under sessions
	r.Post("/sessions/{session_id}/estimates", h.Snapshot)

	r.Route("/estimates", func(r chi.Router) {
		r.Get("/{estimate_id}", h.Get)

		// Listing exposes other respondents' results, so it sits behind
		// the admin API key.
		r.With(h.Admin).Get("/", h.ListRecent)
	})
}

// Snapshot persists the pricing result of a session on the results phase.
// 201: JSON; 404: session not found; 409: questionnaire incomplete.
func (h *EstimateHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Session ID", "Path parameter session_id is required.")
		return
	}

	s, err := h.Sessions.Get(r.Context(), sessionID)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get session")
		return
	}

	est, err := h.Svc.Snapshot(r.Context(), &s)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(est); err != nil {
		h.Log.Error("failed to encode estimate", "estimate_id", est.ID, "err", err)
	}
}

// Get retrieves a saved estimate by ID.
// 200: JSON; 400: missing ID; 404: not found.
func (h *EstimateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "estimate_id")
	if id == "" {
		problem.Write(w, http.StatusBadRequest, "Missing Estimate ID", "Path parameter estimate_id is required.")
		return
	}

	est, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to get estimate")
		return
	}

	if err := json.NewEncoder(w).Encode(est); err != nil {
		h.Log.Error("failed to encode estimate", "estimate_id", id, "err", err)
	}
}

// ListRecent returns the most recently saved estimates. Admin only.
// 200: JSON; 401: missing or wrong API key.
func (h *EstimateHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	estimates, err := h.Svc.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(r.Context(), h.Log, w, err, "Failed to list estimates")
		return
	}
	if estimates == nil {
		estimates = []core.Estimate{}
	}

	if err := json.NewEncoder(w).Encode(estimates); err != nil {
		h.Log.Error("failed to encode estimates", "err", err)
	}
}
