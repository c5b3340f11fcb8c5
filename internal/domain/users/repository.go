package users

import (
	"context"
	"errors"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is the fixed-shape identity record handed to views. The password
// hash never leaves the storage boundary except through Credentials.
type User struct {
	Email string
	Name  string
}

// Credentials is the stored login record fetched for verification.
type Credentials struct {
	Email        string
	Name         string
	PasswordHash string
}

type Repository interface {
	// Create inserts a new user row. Returns ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, email, name, passwordHash string) error

	// GetCredentials fetches the stored hash for login verification.
	// Returns ErrNotFound when no such user exists.
	GetCredentials(ctx context.Context, email string) (*Credentials, error)
}
