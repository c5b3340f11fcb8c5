package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@campus.edu", true},
		{"weird+tag@sub.domain.org", true},
		{"", false},
		{"no-at-sign.com", false},
		{"two@@signs.com", false},
		{"missing@dot", false},
		{"spaces in@local.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			require.Equal(t, tc.want, ValidEmail(tc.email))
		})
	}
}

func TestSignup(t *testing.T) {
	valid := SignupForm{Email: "a@b.com", Name: "A", Password: "longpass1"}
	require.NoError(t, Signup(valid))

	cases := []struct {
		name string
		form SignupForm
		want error
	}{
		{"bad email", SignupForm{Email: "nope", Name: "A", Password: "longpass1"}, ErrInvalidEmail},
		{"empty email", SignupForm{Name: "A", Password: "longpass1"}, ErrInvalidEmail},
		{"short password", SignupForm{Email: "a@b.com", Name: "A", Password: "short"}, ErrPasswordTooWeak},
		{"empty password", SignupForm{Email: "a@b.com", Name: "A"}, ErrPasswordTooWeak},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, Signup(tc.form), tc.want)
		})
	}

	t.Run("missing name", func(t *testing.T) {
		err := Signup(SignupForm{Email: "a@b.com", Password: "longpass1"})
		require.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	require.NoError(t, Login(LoginForm{Email: "a@b.com", Password: "x"}))
	require.ErrorIs(t, Login(LoginForm{Email: "bad", Password: "x"}), ErrInvalidEmail)
	require.ErrorIs(t, Login(LoginForm{Email: "a@b.com"}), ErrInvalidEmail)
}

func TestEvent(t *testing.T) {
	valid := EventForm{
		Name:      "Gala",
		OrgName:   "Clubs",
		VenueID:   "1",
		Date:      "2024-05-01",
		StartTime: "18:00",
		EndTime:   "20:00",
		Price:     "25.50",
	}
	require.NoError(t, Event(valid))

	missing := valid
	missing.Date = ""
	require.Error(t, Event(missing))
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{"normal", "25.50", 25.50, false},
		{"zero", "0", 0, false},
		{"empty means free", "", 0, false},
		{"whitespace", "  12 ", 12, false},
		{"negative", "-1", 0, true},
		{"non-numeric", "abc", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParsePrice(tc.raw)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
