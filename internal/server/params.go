package server

import (
	"net/http"
	"strconv"
	"strings"
)

func requireIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return requireInt64Param(w, r, "id")
}

func requireScenarioIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	return requireInt64Param(w, r, "scenario_id")
}

func requireInt64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		writeAPIError(w, r, http.StatusBadRequest, "missing_"+name, name+" is required")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeAPIError(w, r, http.StatusBadRequest, "invalid_"+name, "invalid "+name)
		return 0, false
	}
	return id, true
}
