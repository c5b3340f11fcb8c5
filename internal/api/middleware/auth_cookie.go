package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/campusboard/server/internal/api/flash"
	"github.com/campusboard/server/internal/auth"
)

type contextKeyAuth string

const currentUserKey contextKeyAuth = "currentUser"

// SessionUser resolves the session cookie, if present, into a
// request-scoped identity. Anonymous requests pass through untouched.
func SessionUser(manager *auth.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil || strings.TrimSpace(cookie.Value) == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := manager.Validate(cookie.Value)
			if err != nil {
				// Expired or tampered cookie: treat as anonymous.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithUser(r.Context(), user)))
		})
	}
}

// RequireUser gates a handler behind authentication. Anonymous requests
// are sent to the login page with a flash; no return destination is
// preserved.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r) == nil {
			flash.Redirect(w, r, "/login", "Please log in first.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func contextWithUser(ctx context.Context, user *auth.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the authenticated identity, or nil.
func CurrentUser(r *http.Request) *auth.User {
	if r == nil {
		return nil
	}
	if user, ok := r.Context().Value(currentUserKey).(*auth.User); ok {
		return user
	}
	return nil
}
