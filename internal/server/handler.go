package server

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	directoryports "github.com/jacksonlee411/career-planner/modules/directory/domain/ports"
	orgchartports "github.com/jacksonlee411/career-planner/modules/orgchart/domain/ports"
	scenarioports "github.com/jacksonlee411/career-planner/modules/scenario/domain/ports"
	scenarioservices "github.com/jacksonlee411/career-planner/modules/scenario/services"
	staffingports "github.com/jacksonlee411/career-planner/modules/staffing/domain/ports"
	staffingservices "github.com/jacksonlee411/career-planner/modules/staffing/services"
)

type HandlerOptions struct {
	ScenarioStore   scenarioports.ScenarioStore
	PositionStore   orgchartports.PositionStore
	EmployeeStore   directoryports.EmployeeStore
	AssignmentStore staffingports.AssignmentStore
	Logger          zerolog.Logger
}

func NewHandler(opts HandlerOptions) (http.Handler, error) {
	if opts.ScenarioStore == nil || opts.PositionStore == nil || opts.EmployeeStore == nil || opts.AssignmentStore == nil {
		return nil, errors.New("server: all four stores are required")
	}

	scenarios := scenarioservices.NewScenarioService(opts.ScenarioStore)
	staffing := staffingservices.NewStaffingService(opts.AssignmentStore)

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	mux.HandleFunc("/api/scenarios", func(w http.ResponseWriter, r *http.Request) {
		handleScenariosAPI(w, r, scenarios)
	})
	mux.HandleFunc("/api/scenarios:seed", func(w http.ResponseWriter, r *http.Request) {
		handleScenariosSeedAPI(w, r, scenarios)
	})

	mux.HandleFunc("/api/positions", func(w http.ResponseWriter, r *http.Request) {
		handlePositionsAPI(w, r, opts.PositionStore)
	})
	mux.HandleFunc("/api/positions:options", func(w http.ResponseWriter, r *http.Request) {
		handlePositionOptionsAPI(w, r, opts.PositionStore)
	})
	mux.HandleFunc("/api/chart", func(w http.ResponseWriter, r *http.Request) {
		handleChartAPI(w, r, opts.PositionStore)
	})

	mux.HandleFunc("/api/employees", func(w http.ResponseWriter, r *http.Request) {
		handleEmployeesAPI(w, r, opts.EmployeeStore)
	})
	mux.HandleFunc("/api/employees:options", func(w http.ResponseWriter, r *http.Request) {
		handleEmployeeOptionsAPI(w, r, opts.EmployeeStore)
	})

	mux.HandleFunc("/api/assignments", func(w http.ResponseWriter, r *http.Request) {
		handleAssignmentsAPI(w, r, staffing)
	})
	mux.HandleFunc("/api/assignments:move", func(w http.ResponseWriter, r *http.Request) {
		handleAssignmentsMoveAPI(w, r, staffing, opts.PositionStore, opts.EmployeeStore)
	})

	var h http.Handler = mux
	h = accessLogMiddleware(opts.Logger, h)
	h = requestIDMiddleware(h)
	return h, nil
}
