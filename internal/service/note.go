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

// NoteService implements business logic for note operations.
type NoteService struct {
	repo repo.NoteRepo
}

// NewNoteService constructs a NoteService backed by the provided repo.
func NewNoteService(r repo.NoteRepo) *NoteService {
	return &NoteService{repo: r}
}

// Create validates and stores a new note, assigning its id and timestamps.
// Whitespace-only content is rejected the same as empty content.
func (s *NoteService) Create(ctx context.Context, date, content string) (domain.Note, error) {
	if !domain.IsValidDate(date) {
		return domain.Note{}, errInvalidDate()
	}
	if strings.TrimSpace(content) == "" {
		return domain.Note{}, fmt.Errorf("%w: Note content cannot be empty", domain.ErrValidation)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339)
	note := domain.Note{
		ID:        uuid.NewString(),
		Date:      date,
		Content:   content,
		CreatedAt: timestamp,
		UpdatedAt: timestamp,
	}

	if err := s.repo.Create(ctx, note); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

// List returns notes for the given date via the date index, or every note
// when date is empty. Zero matches yield an empty slice, not an error.
func (s *NoteService) List(ctx context.Context, date string) ([]domain.Note, error) {
	var (
		notes []domain.Note
		err   error
	)
	if date != "" {
		if !domain.IsValidDate(date) {
			return nil, errInvalidDate()
		}
		notes, err = s.repo.ListByDate(ctx, date)
	} else {
		notes, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	if notes == nil {
		notes = []domain.Note{}
	}
	return notes, nil
}
