package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// createNoteRequest is the POST /notes body.
type createNoteRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// CreateNote handles POST /notes.
func (s *Server) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(w, http.StatusBadRequest, "Missing request body")
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := s.notes.Create(r.Context(), req.Date, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusBadRequest, errorMessage(err))
			return
		}
		respondInternalError(w, r, "Could not create note", err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

// ListNotes handles GET /notes.
// With a ?date= query parameter it returns only that day's notes (via the
// date index); without one it returns every note.
func (s *Server) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := s.notes.List(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusBadRequest, errorMessage(err))
			return
		}
		respondInternalError(w, r, "Could not fetch notes", err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}
