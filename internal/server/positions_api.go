package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
)

type positionsAPIRequest struct {
	ScenarioID  int64  `json:"scenario_id"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	ParentTitle string `json:"parent_title"`
}

func handlePositionsAPI(w http.ResponseWriter, r *http.Request, store ports.PositionStore) {
	switch r.Method {
	case http.MethodGet:
		scenarioID, ok := requireScenarioIDParam(w, r)
		if !ok {
			return
		}
		positions, err := store.ListPositions(r.Context(), scenarioID)
		if err != nil {
			writeStoreError(w, r, err, "list_failed")
			return
		}
		if positions == nil {
			positions = make([]types.Position, 0)
		}
		writeJSON(w, map[string]any{"scenario_id": scenarioID, "positions": positions})

	case http.MethodPost:
		var req positionsAPIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "bad_json", "bad json")
			return
		}
		req.Title = strings.TrimSpace(req.Title)
		req.Department = strings.TrimSpace(req.Department)
		req.ParentTitle = strings.TrimSpace(req.ParentTitle)
		if req.ScenarioID == 0 {
			writeAPIError(w, r, http.StatusUnprocessableEntity, "missing_scenario_id", "scenario_id is required")
			return
		}
		if req.Title == "" {
			writeAPIError(w, r, http.StatusUnprocessableEntity, "missing_title", "title is required")
			return
		}

		// Parent arrives as a displayed title. Empty or unresolved means the
		// position is created as a root.
		var parentID *int64
		if req.ParentTitle != "" {
			options, err := store.ListPositionOptions(r.Context(), req.ScenarioID)
			if err != nil {
				writeStoreError(w, r, err, "list_failed")
				return
			}
			if id, ok := resolvePositionID(options, req.ParentTitle); ok {
				parentID = &id
			}
		}

		if err := store.AddPosition(r.Context(), req.ScenarioID, req.Title, req.Department, parentID); err != nil {
			writeStoreError(w, r, err, "create_failed")
			return
		}
		w.WriteHeader(http.StatusCreated)

	case http.MethodDelete:
		id, ok := requireIDParam(w, r)
		if !ok {
			return
		}
		if err := store.DeletePosition(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "delete_failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeMethodNotAllowed(w, r)
	}
}

func handlePositionOptionsAPI(w http.ResponseWriter, r *http.Request, store ports.PositionStore) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}
	scenarioID, ok := requireScenarioIDParam(w, r)
	if !ok {
		return
	}
	options, err := store.ListPositionOptions(r.Context(), scenarioID)
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}
	if options == nil {
		options = make([]types.PositionOption, 0)
	}
	writeJSON(w, map[string]any{"scenario_id": scenarioID, "options": options})
}
