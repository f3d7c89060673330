package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// errorResponse is the JSON envelope for every error body: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as the JSON body with the given status code.
// Encoding failures are logged but not surfaced — the status line has
// already been written by then.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response body", "error", err)
	}
}

// respondError writes an errorResponse with the given status and message.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondInternalError logs the cause and returns a generic 500 message.
// The specific error is never exposed to the caller.
func respondInternalError(w http.ResponseWriter, r *http.Request, message string, err error) {
	slog.ErrorContext(r.Context(), message, "error", err)
	respondError(w, http.StatusInternalServerError, message)
}

// errorMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "validation error: Note content cannot be empty" →
// "Note content cannot be empty".
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "not found: "} {
		if i := strings.Index(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
