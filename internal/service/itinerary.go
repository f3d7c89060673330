// Package service contains the business logic for the travel planner API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No DynamoDB code lives here — services depend on repo interfaces, not
// implementations.
package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkordes/travel-planner/backend/internal/domain"
	"github.com/pkordes/travel-planner/backend/internal/repo"
)

// errInvalidDate is the shared rejection for any malformed DD/MM/YY input.
func errInvalidDate() error {
	return fmt.Errorf("%w: Invalid date format. Please use DD/MM/YY", domain.ErrValidation)
}

// ItineraryService implements business logic for itinerary operations.
type ItineraryService struct {
	repo repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repo.
func NewItineraryService(r repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{repo: r}
}

// List returns all itinerary items sorted chronologically. Scan order from
// the store is arbitrary, so the sort happens here on every call.
func (s *ItineraryService) List(ctx context.Context) ([]domain.ItineraryItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return domain.CompareDates(items[i].Date, items[j].Date) < 0
	})

	if items == nil {
		items = []domain.ItineraryItem{}
	}
	return items, nil
}

// GetByDate returns the itinerary item stored under date.
// Returns domain.ErrValidation for a malformed date and domain.ErrNotFound
// when no item exists.
func (s *ItineraryService) GetByDate(ctx context.Context, date string) (domain.ItineraryItem, error) {
	if !domain.IsValidDate(date) {
		return domain.ItineraryItem{}, errInvalidDate()
	}
	return s.repo.GetByDate(ctx, date)
}

// Update applies a partial update to the item stored under date and
// returns the full record after the write. Only fields present in upd are
// written; the rest keep their stored values. The existence check and the
// write are separate store calls, so concurrent updates to the same date
// are last-write-wins.
func (s *ItineraryService) Update(ctx context.Context, date string, upd domain.ItineraryUpdate) (domain.ItineraryItem, error) {
	if !domain.IsValidDate(date) {
		return domain.ItineraryItem{}, errInvalidDate()
	}
	// The record must exist before the update body is inspected, so a
	// missing date reports 404 even when the body carries no fields.
	if _, err := s.repo.GetByDate(ctx, date); err != nil {
		return domain.ItineraryItem{}, err
	}

	if upd.IsEmpty() {
		return domain.ItineraryItem{}, fmt.Errorf("%w: No valid fields to update", domain.ErrValidation)
	}

	return s.repo.Update(ctx, date, upd)
}
