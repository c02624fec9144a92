package web

// errors.go provides unified error response handling for the web layer.
//
// The service surfaces four kinds of outcomes and each has a fixed
// status code and body shape:
//
//   - core.ValidationErrors → 400 {"errors":[{"field","message"}, ...]}
//   - core.ErrDuplicateLicense → 409 {"error": "..."}
//   - core.ErrNotFound → 404 {"error": "..."}
//   - anything else → 500 {"error": "..."} with the technical detail
//     logged server-side, never sent to the client

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nursedesk/internal/core"
	"nursedesk/internal/logging"
)

// errorBody is the single-error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// validationBody is the response shape for collected field errors.
type validationBody struct {
	Errors []core.FieldError `json:"errors"`
}

// respondError maps a service error to its status code and body, and
// logs the technical detail with the request id for correlation.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs core.ValidationErrors

	status := http.StatusInternalServerError
	var body any = errorBody{Error: "internal server error"}

	switch {
	case errors.As(err, &verrs):
		status = http.StatusBadRequest
		body = validationBody{Errors: verrs}
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
		body = errorBody{Error: "Nurse not found"}
	case errors.Is(err, core.ErrDuplicateLicense):
		status = http.StatusConflict
		body = errorBody{Error: "License number already in use"}
	}

	logger := logging.FromContext(r.Context())
	logger.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
	)

	writeJSON(w, status, body)
}

// writeJSON encodes v as JSON with the given status code.
// Encoding errors are logged since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

// writeError writes a single-message JSON error response. Used by
// middleware that runs before a request reaches a handler.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: message})
}
