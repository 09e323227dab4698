package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/orgchart/domain/types"
	"github.com/jacksonlee411/career-planner/modules/orgchart/services"
)

func handleChartAPI(w http.ResponseWriter, r *http.Request, store ports.PositionStore) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}
	scenarioID, ok := requireScenarioIDParam(w, r)
	if !ok {
		return
	}
	root := strings.TrimSpace(r.URL.Query().Get("root"))

	positions, err := store.ListPositions(r.Context(), scenarioID)
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}

	forest, err := services.BuildForest(positions, root)
	if err != nil {
		if errors.Is(err, services.ErrHierarchyCycle) {
			writeAPIError(w, r, http.StatusUnprocessableEntity, "hierarchy_cycle", err.Error())
			return
		}
		writeStoreError(w, r, err, "chart_failed")
		return
	}
	if forest == nil {
		forest = make([]types.TreeNode, 0)
	}
	writeJSON(w, map[string]any{"scenario_id": scenarioID, "root": root, "forest": forest})
}
