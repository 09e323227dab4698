package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/jacksonlee411/career-planner/modules/scenario/domain/types"
	scenarioservices "github.com/jacksonlee411/career-planner/modules/scenario/services"
)

func handleScenariosAPI(w http.ResponseWriter, r *http.Request, svc *scenarioservices.ScenarioService) {
	switch r.Method {
	case http.MethodGet:
		scenarios, err := svc.ListScenarios(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "list_failed")
			return
		}
		if scenarios == nil {
			scenarios = make([]types.Scenario, 0)
		}
		writeJSON(w, map[string]any{"scenarios": scenarios})
	case http.MethodDelete:
		id, ok := requireIDParam(w, r)
		if !ok {
			return
		}
		if err := svc.DeleteScenario(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "delete_failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, r)
	}
}

type scenariosSeedAPIRequest struct {
	Years int `json:"years"`
}

func handleScenariosSeedAPI(w http.ResponseWriter, r *http.Request, svc *scenarioservices.ScenarioService) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	var req scenariosSeedAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeAPIError(w, r, http.StatusBadRequest, "bad_json", "bad json")
		return
	}
	if req.Years == 0 {
		req.Years = 3
	}
	if req.Years < 1 {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "invalid_years", "years must be at least 1")
		return
	}

	if err := svc.SeedQuarters(r.Context(), req.Years); err != nil {
		writeStoreError(w, r, err, "seed_failed")
		return
	}

	scenarios, err := svc.ListScenarios(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}
	writeJSON(w, map[string]any{"scenarios": scenarios})
}
