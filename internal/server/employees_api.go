package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jacksonlee411/career-planner/modules/directory/domain/ports"
	"github.com/jacksonlee411/career-planner/modules/directory/domain/types"
)

type employeesAPIRequest struct {
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
}

func handleEmployeesAPI(w http.ResponseWriter, r *http.Request, store ports.EmployeeStore) {
	switch r.Method {
	case http.MethodGet:
		employees, err := store.ListEmployees(r.Context())
		if err != nil {
			writeStoreError(w, r, err, "list_failed")
			return
		}
		if employees == nil {
			employees = make([]types.Employee, 0)
		}
		writeJSON(w, map[string]any{"employees": employees})

	case http.MethodPost:
		var req employeesAPIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeAPIError(w, r, http.StatusBadRequest, "bad_json", "bad json")
			return
		}
		req.EmployeeCode = strings.TrimSpace(req.EmployeeCode)
		req.FullName = strings.TrimSpace(req.FullName)
		if req.EmployeeCode == "" {
			writeAPIError(w, r, http.StatusUnprocessableEntity, "missing_employee_code", "employee_code is required")
			return
		}
		if req.FullName == "" {
			writeAPIError(w, r, http.StatusUnprocessableEntity, "missing_full_name", "full_name is required")
			return
		}
		if err := store.AddEmployee(r.Context(), req.EmployeeCode, req.FullName); err != nil {
			writeStoreError(w, r, err, "create_failed")
			return
		}
		w.WriteHeader(http.StatusCreated)

	case http.MethodDelete:
		id, ok := requireIDParam(w, r)
		if !ok {
			return
		}
		if err := store.DeleteEmployee(r.Context(), id); err != nil {
			writeStoreError(w, r, err, "delete_failed")
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeMethodNotAllowed(w, r)
	}
}

func handleEmployeeOptionsAPI(w http.ResponseWriter, r *http.Request, store ports.EmployeeStore) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, r)
		return
	}
	options, err := store.ListEmployeeOptions(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list_failed")
		return
	}
	if options == nil {
		options = make([]types.EmployeeOption, 0)
	}
	writeJSON(w, map[string]any{"options": options})
}
