package server

import (
	"encoding/json"
	"net/http"
	"strings"

	directoryports "github.com/jacksonlee411/career-planner/modules/directory/domain/ports"
	orgchartports "github.com/jacksonlee411/career-planner/modules/orgchart/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/staffing/domain/types"
	"github.com/jacksonlee411/career-planner/modules/staffing/services"
)

func handleAssignmentsAPI(w http.ResponseWriter, r *http.Request, svc services.StaffingService) {
	switch r.Method {
	case http.MethodGet:
		scenarioID, ok := requireScenarioIDParam(w, r)
		if !ok {
			return
		}
		assignments, err := svc.ListAssignments(r.Context(), scenarioID)
		if err != nil {
			writeStoreError(w, r, err, "list_failed")
			return
		}
		if assignments == nil {
			assignments = make([]types.Assignment, 0)
		}
		writeJSON(w, map[string]any{"scenario_id": scenarioID, "assignments": assignments})

	case http.MethodDelete:
		id, ok := requireIDParam(w, r)
		if !ok {
			return
		}
		if err := svc.DeleteAssignment(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "delete_failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeMethodNotAllowed(w, r)
	}
}

type assignmentsMoveAPIRequest struct {
	ScenarioID int64  `json:"scenario_id"`
	Employee   string `json:"employee"`
	Position   string `json:"position"`
	StartDate  string `json:"start_date"`
}

// handleAssignmentsMoveAPI resolves the displayed employee and position names
// to ids before delegating to the staffing service.
func handleAssignmentsMoveAPI(w http.ResponseWriter, r *http.Request, svc services.StaffingService, positions orgchartports.PositionStore, employees directoryports.EmployeeStore) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, r)
		return
	}

	var req assignmentsMoveAPIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "bad_json", "bad json")
		return
	}
	req.Employee = strings.TrimSpace(req.Employee)
	req.Position = strings.TrimSpace(req.Position)
	req.StartDate = strings.TrimSpace(req.StartDate)
	if req.ScenarioID == 0 {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "missing_scenario_id", "scenario_id is required")
		return
	}

	employeeOptions, err := employees.ListEmployeeOptions(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}
	employeeID, ok := resolveEmployeeID(employeeOptions, req.Employee)
	if !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "unknown_employee", "employee not selected")
		return
	}

	positionOptions, err := positions.ListPositionOptions(r.Context(), req.ScenarioID)
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}
	positionID, ok := resolvePositionID(positionOptions, req.Position)
	if !ok {
		writeAPIError(w, r, http.StatusUnprocessableEntity, "unknown_position", "position not selected")
		return
	}

	if err := svc.MoveEmployee(r.Context(), employeeID, positionID, req.StartDate); err != nil {
		writeStoreError(w, r, err, "move_failed")
		return
	}

	assignments, err := svc.ListAssignments(r.Context(), req.ScenarioID)
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}
	if assignments == nil {
		assignments = make([]types.Assignment, 0)
	}
	writeJSON(w, map[string]any{"scenario_id": req.ScenarioID, "assignments": assignments})
}
