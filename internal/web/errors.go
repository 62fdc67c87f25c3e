package web

// errors.go provides unified error response handling for the web layer.
//
// Store and ingest failures are usage errors, not environmental ones, so
// the mapping is static: each sentinel gets a status code and the message
// goes to the client as-is. Everything unrecognized becomes a 500 with
// the detail kept server-side.

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/tabledesk/tabledesk/internal/dataset"
	"github.com/tabledesk/tabledesk/internal/ingest"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps err to a status code, logs the technical detail with
// the request ID, and writes a JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusForError(err)

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"request_id", middleware.GetReqID(r.Context()),
	)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	writeError(w, status, message)
}

// statusForError maps known sentinel errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, dataset.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.Is(err, dataset.ErrNilRecord),
		errors.Is(err, dataset.ErrInvalidPage):
		return http.StatusBadRequest
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
