package mysql

import (
	"context"
	"fmt"

	"github.com/campusboard/server/internal/domain/venues"
)

var _ venues.Repository = (*VenueRepository)(nil)

func (r *VenueRepository) List(ctx context.Context) ([]venues.Venue, error) {
	items := []venues.Venue{}
	err := r.db.SelectContext(ctx, &items, `
SELECT v.vid, v.street, v.city, v.zip, z.state
  FROM venue v
  JOIN zip_codes z ON z.zip = v.zip
 ORDER BY v.vid`)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return items, nil
}
