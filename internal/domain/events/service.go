package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/campusboard/server/internal/validation"
)

var ErrInvalidVenueID = errors.New("venue id must be a number")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByCreator(ctx context.Context, email string) ([]Summary, error) {
	return s.repo.ListByCreator(ctx, email)
}

func (s *Service) GetDetail(ctx context.Context, id int64) (*Detail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Creator returns the email of the account that created the event.
func (s *Service) Creator(ctx context.Context, id int64) (string, error) {
	return s.repo.GetCreator(ctx, id)
}

// Create validates the form, parses price and venue id, and hands only
// the validated values to the repository. Foreign-key existence is
// checked inside the repository transaction.
func (s *Service) Create(ctx context.Context, form validation.EventForm, creator string) (int64, error) {
	if err := validation.Event(form); err != nil {
		return 0, err
	}

	price, err := validation.ParsePrice(form.Price)
	if err != nil {
		return 0, err
	}

	venueID, err := strconv.ParseInt(strings.TrimSpace(form.VenueID), 10, 64)
	if err != nil {
		return 0, ErrInvalidVenueID
	}

	params := CreateParams{
		Name:        strings.TrimSpace(form.Name),
		OrgName:     strings.TrimSpace(form.OrgName),
		VenueID:     venueID,
		RoomNumber:  strings.TrimSpace(form.RoomNumber),
		Date:        strings.TrimSpace(form.Date),
		StartTime:   strings.TrimSpace(form.StartTime),
		EndTime:     strings.TrimSpace(form.EndTime),
		Description: strings.TrimSpace(form.Description),
		Price:       price,
		CreatedBy:   creator,
	}

	id, err := s.repo.Create(ctx, params)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes an event if the requester created it. Returns
// ErrNotFound for missing events and ErrNotOwner otherwise.
func (s *Service) Delete(ctx context.Context, id int64, requester string) error {
	creator, err := s.repo.GetCreator(ctx, id)
	if err != nil {
		return err
	}
	if creator != requester {
		return ErrNotOwner
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	return nil
}
