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

// createPlaceRequest is the POST /places body. The id, createdAt, and
// default imageUrl are assigned server-side.
type createPlaceRequest struct {
	Name         string              `json:"name"`
	City         string              `json:"city"`
	Type         domain.PlaceType    `json:"type"`
	Description  string              `json:"description"`
	Address      string              `json:"address"`
	OpeningHours string              `json:"openingHours"`
	Website      string              `json:"website"`
	ImageURL     string              `json:"imageUrl"`
	Rating       *float64            `json:"rating"`
	Coordinates  *domain.Coordinates `json:"coordinates"`
}

// CreatePlace handles POST /places.
func (s *Server) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req createPlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			respondError(w, http.StatusBadRequest, "Request body is required")
			return
		}
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	place, err := s.places.Create(r.Context(), domain.Place{
		Name:         req.Name,
		City:         req.City,
		Type:         req.Type,
		Description:  req.Description,
		Address:      req.Address,
		OpeningHours: req.OpeningHours,
		Website:      req.Website,
		ImageURL:     req.ImageURL,
		Rating:       req.Rating,
		Coordinates:  req.Coordinates,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusBadRequest, errorMessage(err))
			return
		}
		respondInternalError(w, r, "Could not create place", err)
		return
	}
	respondJSON(w, http.StatusCreated, place)
}

// ListPlaces handles GET /places.
func (s *Server) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.places.List(r.Context())
	if err != nil {
		respondInternalError(w, r, "Could not fetch places", err)
		return
	}
	respondJSON(w, http.StatusOK, places)
}

// ListPlacesByCity handles GET /places/{city}.
// Zero matches return 404 rather than an empty array; the web client
// relies on this.
func (s *Server) ListPlacesByCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if decoded, err := url.PathUnescape(city); err == nil {
		city = decoded
	}

	places, err := s.places.ListByCity(r.Context(), city)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			respondError(w, http.StatusBadRequest, errorMessage(err))
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, errorMessage(err))
		default:
			respondInternalError(w, r, "Could not fetch places for the specified city", err)
		}
		return
	}
	respondJSON(w, http.StatusOK, places)
}
