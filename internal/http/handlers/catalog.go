package handlers

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/QuotelyAi/cheapestcarinsurancetulsa/internal/core"
	"github.com/QuotelyAi/cheapestcarinsurancetulsa/pkg/problem"
)

// CatalogHandler serves the static rating tables so host pages can render
// question screens and carrier lists without hardcoding them.
type CatalogHandler struct {
	Catalog  *core.Catalog
	Carriers []core.CarrierScoring
	Log      *slog.Logger
}

func NewCatalogHandler(catalog *core.Catalog, carriers []core.CarrierScoring, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Carriers: carriers, Log: log}
}

func (h *CatalogHandler) Mount(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/questions", h.Questions)
		r.Get("/states", h.States)
		r.Get("/carriers", h.CarrierTable)
	})
}

// Questions returns the question tables, optionally filtered by category.
// 200: JSON; 400: unknown category.
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	if cat := r.URL.Query().Get("category"); cat != "" {
		questions := h.Catalog.Questions(core.QuestionCategory(cat))
		if questions == nil {
			problem.Write(w, http.StatusBadRequest, "Unknown Category",
				"Category must be one of driver, vehicle or policy.")
			return
		}
		if err := json.NewEncoder(w).Encode(questions); err != nil {
			h.Log.Error("failed to encode questions", "err", err)
		}
		return
	}

	all := map[string][]core.Question{
		"driver":  h.Catalog.Driver,
		"vehicle": h.Catalog.Vehicle,
		"policy":  h.Catalog.Policy,
	}
	if err := json.NewEncoder(w).Encode(all); err != nil {
		h.Log.Error("failed to encode questions", "err", err)
	}
}

// States returns the jurisdiction table sorted by state code.
// 200: JSON.
func (h *CatalogHandler) States(w http.ResponseWriter, r *http.Request) {
	states := make([]core.StateConfig, 0, len(core.StateConfigs))
	for _, cfg := range core.StateConfigs {
		states = append(states, cfg)
	}
	sort.Slice(states, func(a, b int) bool { return states[a].Code < states[b].Code })

	if err := json.NewEncoder(w).Encode(states); err != nil {
		h.Log.Error("failed to encode states", "err", err)
	}
}

// CarrierTable returns the carrier scoring table.
// 200: JSON.
func (h *CatalogHandler) CarrierTable(w http.ResponseWriter, r *http.Request) {
	if err := json.NewEncoder(w).Encode(h.Carriers); err != nil {
		h.Log.Error("failed to encode carriers", "err", err)
	}
}
