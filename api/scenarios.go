/*
scenarios.go - Demo roster loaders

PURPOSE:
	Provides pre-built rosters for demos and manual testing. Loading a
	scenario resets the roster and adds the scenario's employees in order.

AVAILABLE SCENARIOS:

	small-team:      Alice (manager) and Bob (engineer)
	duplicate-names: Two employees named Dana of different kinds
	mixed-staff:     All three kinds including plain staff positions

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "small-team"}

NOTE:

	Scenarios reset the roster. Only use in development/demo environments.
*/
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "small-team",
		Name:        "Small Team",
		Description: "One manager with a bonus and one engineer with overtime",
	},
	{
		ID:          "duplicate-names",
		Name:        "Duplicate Names",
		Description: "Two employees share a name; pay is tracked per roster entry",
	},
	{
		ID:          "mixed-staff",
		Name:        "Mixed Staff",
		Description: "Managers, engineers and plain staff positions",
	},
}

// scenarioRosters holds the employees of each scenario as factory JSON.
var scenarioRosters = map[string][]string{
	"small-team": {
		`{"kind":"manager","name":"Alice","base_salary":"500000","bonus":"50000"}`,
		`{"kind":"engineer","name":"Bob","base_salary":"400000","overtime_hours":"10","overtime_rate":"3000"}`,
	},
	"duplicate-names": {
		`{"kind":"staff","name":"Dana","position":"Clerk","base_salary":"250000"}`,
		`{"kind":"manager","name":"Dana","base_salary":"450000","bonus":"25000"}`,
	},
	"mixed-staff": {
		`{"kind":"manager","name":"Alice","base_salary":"500000","bonus":"50000"}`,
		`{"kind":"engineer","name":"Bob","base_salary":"400000","overtime_hours":"10","overtime_rate":"3000"}`,
		`{"kind":"engineer","name":"Erlan","base_salary":"380000","overtime_hours":"0","overtime_rate":"2800"}`,
		`{"kind":"staff","name":"Carol","position":"Accountant","base_salary":"320000"}`,
		`{"kind":"staff","name":"Timur","position":"Driver","base_salary":"210000"}`,
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetCurrentScenario returns the currently loaded scenario, if any.
func (h *Handler) GetCurrentScenario(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	current := h.currentScenario
	h.mu.Unlock()

	for _, s := range scenarios {
		if s.ID == current {
			writeJSON(w, http.StatusOK, s)
			return
		}
	}
	writeJSON(w, http.StatusOK, nil)
}

// LoadScenario replaces the roster with a predefined one.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if _, ok := scenarioRosters[req.ScenarioID]; !ok {
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	if err := h.loadScenario(r.Context(), req.ScenarioID); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load scenario: %v", err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": req.ScenarioID})
}

// ResetRoster clears the roster.
func (h *Handler) ResetRoster(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset roster", err)
		return
	}

	h.mu.Lock()
	h.currentScenario = ""
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

func (h *Handler) loadScenario(ctx context.Context, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.Store.Reset(ctx); err != nil {
		return fmt.Errorf("reset roster: %w", err)
	}
	h.currentScenario = ""

	for _, raw := range scenarioRosters[id] {
		emp, err := h.Factory.ParseEmployee(raw)
		if err != nil {
			return err
		}
		if _, _, err := h.Store.Add(ctx, emp); err != nil {
			return err
		}
	}

	h.currentScenario = id
	log.Info().Str("scenario", id).Int("employees", len(scenarioRosters[id])).Msg("scenario loaded")
	return nil
}
