package users

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusboard/server/internal/validation"
)

// BcryptCost is the cost factor for password hashing.
const BcryptCost = 12

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SignupParams struct {
	Email    string
	Name     string
	Password string
}

// Signup validates the form, hashes the password, and creates the user.
// Returns ErrEmailTaken for duplicate registrations and validation
// errors verbatim so handlers can flash them.
func (s *Service) Signup(ctx context.Context, params SignupParams) (*User, error) {
	form := validation.SignupForm{
		Email:    params.Email,
		Name:     params.Name,
		Password: params.Password,
	}
	if err := validation.Signup(form); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.Create(ctx, params.Email, params.Name, string(hash)); err != nil {
		return nil, err
	}
	return &User{Email: params.Email, Name: params.Name}, nil
}

// Authenticate verifies an email/password pair. A missing user and a
// wrong password both return ErrInvalidCredentials so the response never
// discloses which accounts exist.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	if err := validation.Login(validation.LoginForm{Email: email, Password: password}); err != nil {
		return nil, ErrInvalidCredentials
	}

	creds, err := s.repo.GetCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &User{Email: creds.Email, Name: creds.Name}, nil
}

// Get returns the profile record for an authenticated user.
func (s *Service) Get(ctx context.Context, email string) (*User, error) {
	creds, err := s.repo.GetCredentials(ctx, email)
	if err != nil {
		return nil, err
	}
	return &User{Email: creds.Email, Name: creds.Name}, nil
}
