package events

import (
	"context"
	"errors"
)

var (
	ErrNotFound             = errors.New("event not found")
	ErrNotOwner             = errors.New("not allowed to delete this event")
	ErrVenueNotFound        = errors.New("venue does not exist")
	ErrOrganizationNotFound = errors.New("organization does not exist")
)

// Summary is the listing row for the home and profile pages: the event
// joined with its hosting organization.
type Summary struct {
	ID        int64   `db:"eid"`
	Name      string  `db:"event_name"`
	OrgName   string  `db:"org_name"`
	Date      string  `db:"date"`
	StartTime string  `db:"start_time"`
	EndTime   string  `db:"end_time"`
	Price     float64 `db:"price"`
}

// Detail is the full event page row: event, host, organization, venue,
// and zip code joined together, with the creator left-joined because the
// account may no longer exist.
type Detail struct {
	ID          int64   `db:"eid"`
	Name        string  `db:"event_name"`
	OrgName     string  `db:"org_name"`
	RoomNumber  string  `db:"room_number"`
	Date        string  `db:"date"`
	StartTime   string  `db:"start_time"`
	EndTime     string  `db:"end_time"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Street      string  `db:"street"`
	City        string  `db:"city"`
	Zip         string  `db:"zip"`
	State       string  `db:"state"`
	CreatorName *string `db:"creator_name"`
}

// CreateParams holds the validated, parsed values that get inserted.
// Handlers must never feed raw form fields in here.
type CreateParams struct {
	Name        string
	OrgName     string
	VenueID     int64
	RoomNumber  string
	Date        string
	StartTime   string
	EndTime     string
	Description string
	Price       float64
	CreatedBy   string
}

type Repository interface {
	// List returns all events with their hosting organization, ordered
	// by event name.
	List(ctx context.Context) ([]Summary, error)

	// ListByCreator returns the events a user created, ordered by date,
	// start time, then name.
	ListByCreator(ctx context.Context, email string) ([]Summary, error)

	// GetDetail returns the full detail row, or ErrNotFound.
	GetDetail(ctx context.Context, id int64) (*Detail, error)

	// GetCreator returns the created_by email, or ErrNotFound.
	GetCreator(ctx context.Context, id int64) (string, error)

	// Create checks venue and organization existence and inserts the
	// event row plus its host row, all inside one transaction. Returns
	// ErrVenueNotFound or ErrOrganizationNotFound before any insert.
	Create(ctx context.Context, params CreateParams) (int64, error)

	// Delete removes the host row and the event row inside one
	// transaction.
	Delete(ctx context.Context, id int64) error
}
