package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// pathDate extracts the {date} path parameter. DD/MM/YY dates arrive
// URL-encoded ("18%2F06%2F25") because raw slashes would split the path
// segment, so the parameter is unescaped before use.
func pathDate(r *http.Request) string {
	raw := chi.URLParam(r, "date")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// ListItinerary handles GET /itinerary.
// Returns every itinerary item sorted chronologically by date.
func (s *Server) ListItinerary(w http.ResponseWriter, r *http.Request) {
	items, err := s.itinerary.List(r.Context())
	if err != nil {
		respondInternalError(w, r, "Could not fetch itinerary", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GetItineraryByDate handles GET /itinerary/{date}.
func (s *Server) GetItineraryByDate(w http.ResponseWriter, r *http.Request) {
	item, err := s.itinerary.GetByDate(r.Context(), pathDate(r))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, errorMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Itinerary for this date not found")
		default:
			respondInternalError(w, r, "Could not fetch itinerary for the specified date", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, item)
}

// UpdateItinerary handles PUT /itinerary/{date}.
// The body carries only the fields to change; absent fields keep their
// stored values.
func (s *Server) UpdateItinerary(w http.ResponseWriter, r *http.Request) {
	var upd domain.ItineraryUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(w, http.StatusBadRequest, "Request body is required")
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := s.itinerary.Update(r.Context(), pathDate(r), upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, errorMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Itinerary for this date not found")
		default:
			respondInternalError(w, r, "Could not update itinerary", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, item)
}
