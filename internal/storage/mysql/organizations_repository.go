package mysql

import (
	"context"
	"fmt"

	"github.com/campusboard/server/internal/domain/organizations"
)

var _ organizations.Repository = (*OrganizationRepository)(nil)

func (r *OrganizationRepository) List(ctx context.Context) ([]organizations.Organization, error) {
	items := []organizations.Organization{}
	err := r.db.SelectContext(ctx, &items, `SELECT org_name FROM organization ORDER BY org_name`)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return items, nil
}
