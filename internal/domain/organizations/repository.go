package organizations

import "context"

type Organization struct {
	Name string `db:"org_name"`
}

type Repository interface {
	// List returns all organizations ordered by name.
	List(ctx context.Context) ([]Organization, error)
}
