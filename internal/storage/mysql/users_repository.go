package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/campusboard/server/internal/domain/users"
)

var _ users.Repository = (*UserRepository)(nil)

// MySQL error 1062: duplicate entry for a unique key.
const errDuplicateEntry = 1062

type userRow struct {
	Email        string `db:"user_email"`
	Name         string `db:"name"`
	PasswordHash string `db:"password_hash"`
}

func (r *UserRepository) Create(ctx context.Context, email, name, passwordHash string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (user_email, name, password_hash)
VALUES (?, ?, ?)`,
		email, name, passwordHash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetCredentials(ctx context.Context, email string) (*users.Credentials, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `
SELECT user_email, name, password_hash
  FROM users
 WHERE user_email = ?`,
		email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &users.Credentials{
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
	}, nil
}
