package server

import (
	"encoding/json"
	"net/http"

	"github.com/jacksonlee411/career-planner/pkg/httperr"
	"github.com/jacksonlee411/career-planner/pkg/storeerr"
)

type errorEnvelope struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	RequestID string            `json:"request_id"`
	Meta      errorEnvelopeMeta `json:"meta"`
}

type errorEnvelopeMeta struct {
	Path   string `json:"path"`
	Method string `json:"method"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, r *http.Request, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Code:      code,
		Message:   message,
		RequestID: requestIDFromContext(r.Context()),
		Meta: errorEnvelopeMeta{
			Path:   r.URL.Path,
			Method: r.Method,
		},
	})
}

// writeStoreError maps the error taxonomy onto status codes: request
// validation to 400, constraint violations to 409, everything else to 500.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case httperr.IsBadRequest(err):
		writeAPIError(w, r, http.StatusBadRequest, "invalid_request", httperr.Message(err))
	case storeerr.IsConstraintViolation(err):
		writeAPIError(w, r, http.StatusConflict, "constraint_violation", err.Error())
	default:
		writeAPIError(w, r, http.StatusInternalServerError, fallback, fallback)
	}
}

func writeMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeAPIError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}
