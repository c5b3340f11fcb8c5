// Package validation holds the form validation rules shared by the
// signup, login, and event creation handlers.
package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// One "@" with at least one "." somewhere after it. Deliberately loose;
// the mailbox is never verified beyond this shape.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const MinPasswordLength = 8

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// The stock "email" rule is stricter than we want; campus addresses
	// with unusual local parts must keep working.
	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

type SignupForm struct {
	Email    string `validate:"required,simple_email"`
	Name     string `validate:"required"`
	Password string `validate:"required,min=8"`
}

type LoginForm struct {
	Email    string `validate:"required,simple_email"`
	Password string `validate:"required"`
}

// EventForm carries the raw POST fields of the event creation form.
// Price stays a string here; ParsePrice produces the value that is
// actually inserted.
type EventForm struct {
	Name        string `validate:"required"`
	OrgName     string `validate:"required"`
	VenueID     string `validate:"required"`
	Date        string `validate:"required"`
	StartTime   string `validate:"required"`
	EndTime     string `validate:"required"`
	RoomNumber  string
	Description string
	Price       string
}

// Signup validates a signup form, reporting the first failure in a form
// the handler can flash directly.
func Signup(form SignupForm) error {
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Email":
				return ErrInvalidEmail
			case "Password":
				return ErrPasswordTooWeak
			default:
				return errors.New(strings.ToLower(fieldErrs[0].Field()) + " is required")
			}
		}
		return err
	}
	return nil
}

func Login(form LoginForm) error {
	if err := validate.Struct(form); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Event checks the required event fields are present. Price is parsed
// separately so the validated value can be inserted as-is.
func Event(form EventForm) error {
	if err := validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errors.New("all of event name, organization, venue, date, and times are required")
		}
		return err
	}
	return nil
}

// ParsePrice parses the price field as a non-negative float. An empty
// field means free admission.
func ParsePrice(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	price, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || price < 0 {
		return 0, ErrInvalidPrice
	}
	return price, nil
}

// ValidEmail reports whether the address matches the accepted shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
