package venues

import (
	"context"
	"fmt"
)

type Venue struct {
	ID     int64  `db:"vid"`
	Street string `db:"street"`
	City   string `db:"city"`
	Zip    string `db:"zip"`
	State  string `db:"state"`
}

// Label renders the address line shown in the event creation form.
func (v Venue) Label() string {
	return fmt.Sprintf("%s, %s %s %s", v.Street, v.City, v.State, v.Zip)
}

type Repository interface {
	// List returns all venues with their zip-code state, ordered by id.
	List(ctx context.Context) ([]Venue, error)
}
