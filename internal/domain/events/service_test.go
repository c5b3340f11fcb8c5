package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusboard/server/internal/validation"
)

type stubEventsRepo struct {
	listFn          func() ([]Summary, error)
	listByCreatorFn func(email string) ([]Summary, error)
	getDetailFn     func(id int64) (*Detail, error)
	getCreatorFn    func(id int64) (string, error)
	createFn        func(params CreateParams) (int64, error)
	deleteFn        func(id int64) error
}

func (s stubEventsRepo) List(_ context.Context) ([]Summary, error) {
	return s.listFn()
}

func (s stubEventsRepo) ListByCreator(_ context.Context, email string) ([]Summary, error) {
	return s.listByCreatorFn(email)
}

func (s stubEventsRepo) GetDetail(_ context.Context, id int64) (*Detail, error) {
	return s.getDetailFn(id)
}

func (s stubEventsRepo) GetCreator(_ context.Context, id int64) (string, error) {
	return s.getCreatorFn(id)
}

func (s stubEventsRepo) Create(_ context.Context, params CreateParams) (int64, error) {
	return s.createFn(params)
}

func (s stubEventsRepo) Delete(_ context.Context, id int64) error {
	return s.deleteFn(id)
}

func validForm() validation.EventForm {
	return validation.EventForm{
		Name:      "Gala",
		OrgName:   "Clubs",
		VenueID:   "1",
		Date:      "2024-05-01",
		StartTime: "18:00",
		EndTime:   "20:00",
		Price:     "25.50",
	}
}

func TestCreateInsertsValidatedValues(t *testing.T) {
	var got CreateParams
	repo := stubEventsRepo{
		createFn: func(params CreateParams) (int64, error) {
			got = params
			return 7, nil
		},
	}
	svc := NewService(repo)

	form := validForm()
	form.Name = "  Gala  "
	form.Price = " 25.50 "

	id, err := svc.Create(context.Background(), form, "a@b.com")
	require.NoError(t, err)
	require.Equal(t, int64(7), id)

	// The inserted values are the parsed/trimmed ones, not the raw form fields.
	require.Equal(t, "Gala", got.Name)
	require.Equal(t, "Clubs", got.OrgName)
	require.Equal(t, int64(1), got.VenueID)
	require.Equal(t, 25.50, got.Price)
	require.Equal(t, "a@b.com", got.CreatedBy)
}

func TestCreateRejectsBeforeInsert(t *testing.T) {
	repo := stubEventsRepo{
		createFn: func(CreateParams) (int64, error) {
			t.Fatal("create must not be called for invalid input")
			return 0, nil
		},
	}
	svc := NewService(repo)

	t.Run("missing field", func(t *testing.T) {
		form := validForm()
		form.StartTime = ""
		_, err := svc.Create(context.Background(), form, "a@b.com")
		require.Error(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		form := validForm()
		form.Price = "-5"
		_, err := svc.Create(context.Background(), form, "a@b.com")
		require.ErrorIs(t, err, validation.ErrInvalidPrice)
	})

	t.Run("non-numeric price", func(t *testing.T) {
		form := validForm()
		form.Price = "lots"
		_, err := svc.Create(context.Background(), form, "a@b.com")
		require.ErrorIs(t, err, validation.ErrInvalidPrice)
	})

	t.Run("non-numeric venue id", func(t *testing.T) {
		form := validForm()
		form.VenueID = "main hall"
		_, err := svc.Create(context.Background(), form, "a@b.com")
		require.ErrorIs(t, err, ErrInvalidVenueID)
	})
}

func TestCreatePropagatesMissingForeignKeys(t *testing.T) {
	repo := stubEventsRepo{
		createFn: func(CreateParams) (int64, error) {
			return 0, ErrVenueNotFound
		},
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validForm(), "a@b.com")
	require.ErrorIs(t, err, ErrVenueNotFound)
}

func TestDeleteOwnership(t *testing.T) {
	deleted := false
	repo := stubEventsRepo{
		getCreatorFn: func(id int64) (string, error) {
			if id != 7 {
				return "", ErrNotFound
			}
			return "owner@b.com", nil
		},
		deleteFn: func(id int64) error {
			deleted = true
			return nil
		},
	}
	svc := NewService(repo)

	t.Run("missing event", func(t *testing.T) {
		err := svc.Delete(context.Background(), 99, "owner@b.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("non-creator rejected", func(t *testing.T) {
		err := svc.Delete(context.Background(), 7, "intruder@b.com")
		require.ErrorIs(t, err, ErrNotOwner)
		require.False(t, deleted)
	})

	t.Run("creator allowed", func(t *testing.T) {
		err := svc.Delete(context.Background(), 7, "owner@b.com")
		require.NoError(t, err)
		require.True(t, deleted)
	})
}
