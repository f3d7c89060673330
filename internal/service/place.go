package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/repo"
)

// PlaceService implements business logic for place operations.
type PlaceService struct {
	repo repo.PlaceRepo
}

// NewPlaceService constructs a PlaceService backed by the provided repo.
func NewPlaceService(r repo.PlaceRepo) *PlaceService {
	return &PlaceService{repo: r}
}

// Create validates and stores a new place, assigning its id and creation
// timestamp. Name, city, and type are required; the type must be one of
// the known tags. A missing image URL gets the stock placeholder.
func (s *PlaceService) Create(ctx context.Context, place domain.Place) (domain.Place, error) {
	if strings.TrimSpace(place.Name) == "" ||
		strings.TrimSpace(place.City) == "" ||
		place.Type == "" {
		return domain.Place{}, fmt.Errorf("%w: Name, city, and type are required fields", domain.ErrValidation)
	}
	if !place.Type.Valid() {
		return domain.Place{}, fmt.Errorf("%w: Type must be one of ATTRACTION, RESTAURANT, ACCOMMODATION, TRANSPORT, OTHER", domain.ErrValidation)
	}

	place.ID = uuid.NewString()
	place.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if place.ImageURL == "" {
		place.ImageURL = domain.PlaceholderImageURL(place.City, place.Name)
	}

	if err := s.repo.Create(ctx, place); err != nil {
		return domain.Place{}, err
	}
	return place, nil
}

// List returns every place. Zero matches yield an empty slice.
func (s *PlaceService) List(ctx context.Context) ([]domain.Place, error) {
	places, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if places == nil {
		places = []domain.Place{}
	}
	return places, nil
}

// ListByCity returns all places in the given city via the city index.
// Zero matches are reported as domain.ErrNotFound — unlike the other list
// operations — because the existing web client relies on the 404.
func (s *PlaceService) ListByCity(ctx context.Context, city string) ([]domain.Place, error) {
	if strings.TrimSpace(city) == "" {
		return nil, fmt.Errorf("%w: City parameter is required", domain.ErrValidation)
	}

	places, err := s.repo.ListByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("%w: No places found for city: %s", domain.ErrNotFound, city)
	}
	return places, nil
}
