package mysql

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository groups data access by domain.
type Repository struct {
	db     *sqlx.DB
	schema string
}

func NewRepository(db *sqlx.DB, schema string) (*Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("mysql repository: db is nil")
	}
	return &Repository{db: db, schema: schema}, nil
}

// DB exposes the underlying pool for health checks.
func (r *Repository) DB() *sqlx.DB {
	return r.db
}

func (r *Repository) Users() *UserRepository {
	return &UserRepository{db: r.db}
}

func (r *Repository) Events() *EventRepository {
	return &EventRepository{db: r.db}
}

func (r *Repository) Organizations() *OrganizationRepository {
	return &OrganizationRepository{db: r.db}
}

func (r *Repository) Venues() *VenueRepository {
	return &VenueRepository{db: r.db}
}

func (r *Repository) Schema() *SchemaRepository {
	return &SchemaRepository{db: r.db, schema: r.schema}
}

// WithTx runs fn inside a transaction, rolling back when fn errors.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

type UserRepository struct {
	db *sqlx.DB
}

type EventRepository struct {
	db *sqlx.DB
}

type OrganizationRepository struct {
	db *sqlx.DB
}

type VenueRepository struct {
	db *sqlx.DB
}

type SchemaRepository struct {
	db     *sqlx.DB
	schema string
}
