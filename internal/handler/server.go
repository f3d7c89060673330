// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server. Methods are split into resource-
// specific files (itinerary.go, note.go, place.go) but all share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-planner/backend/internal/domain"
)

// ItineraryServicer defines the business operations the itinerary handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the store or service layer.
type ItineraryServicer interface {
	List(ctx context.Context) ([]domain.ItineraryItem, error)
	GetByDate(ctx context.Context, date string) (domain.ItineraryItem, error)
	Update(ctx context.Context, date string, upd domain.ItineraryUpdate) (domain.ItineraryItem, error)
}

// NoteServicer defines the business operations the note handlers depend on.
type NoteServicer interface {
	Create(ctx context.Context, date, content string) (domain.Note, error)
	List(ctx context.Context, date string) ([]domain.Note, error)
}

// PlaceServicer defines the business operations the place handlers depend on.
type PlaceServicer interface {
	Create(ctx context.Context, place domain.Place) (domain.Place, error)
	List(ctx context.Context) ([]domain.Place, error)
	ListByCity(ctx context.Context, city string) ([]domain.Place, error)
}

// Server holds the handler dependencies for all API endpoints.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	itinerary ItineraryServicer
	notes     NoteServicer
	places    PlaceServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(itinerary ItineraryServicer, notes NoteServicer, places PlaceServicer) *Server {
	return &Server{itinerary: itinerary, notes: notes, places: places}
}

// Routes returns the chi router with every endpoint registered.
// Mount it at the root in main.go.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/health", s.GetHealth)

	r.Get("/itinerary", s.ListItinerary)
	r.Get("/itinerary/{date}", s.GetItineraryByDate)
	r.Put("/itinerary/{date}", s.UpdateItinerary)

	r.Get("/notes", s.ListNotes)
	r.Post("/notes", s.CreateNote)

	r.Get("/places", s.ListPlaces)
	r.Post("/places", s.CreatePlace)
	r.Get("/places/{city}", s.ListPlacesByCity)

	return r
}

// GetHealth handles GET /health.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
