package handlers

import (
	"context"
	"encoding/base64"
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusboard/server/internal/api/middleware"
	"github.com/campusboard/server/internal/auth"
	"github.com/campusboard/server/internal/domain/events"
	"github.com/campusboard/server/internal/domain/organizations"
	"github.com/campusboard/server/internal/domain/users"
	"github.com/campusboard/server/internal/domain/venues"
)

type stubUsers struct {
	createFn         func(ctx context.Context, email, name, passwordHash string) error
	getCredentialsFn func(ctx context.Context, email string) (*users.Credentials, error)
}

func (s *stubUsers) Create(ctx context.Context, email, name, passwordHash string) error {
	return s.createFn(ctx, email, name, passwordHash)
}

func (s *stubUsers) GetCredentials(ctx context.Context, email string) (*users.Credentials, error) {
	return s.getCredentialsFn(ctx, email)
}

type stubEvents struct {
	listFn          func(ctx context.Context) ([]events.Summary, error)
	listByCreatorFn func(ctx context.Context, email string) ([]events.Summary, error)
	getDetailFn     func(ctx context.Context, id int64) (*events.Detail, error)
	getCreatorFn    func(ctx context.Context, id int64) (string, error)
	createFn        func(ctx context.Context, params events.CreateParams) (int64, error)
	deleteFn        func(ctx context.Context, id int64) error
}

func (s *stubEvents) List(ctx context.Context) ([]events.Summary, error) {
	return s.listFn(ctx)
}

func (s *stubEvents) ListByCreator(ctx context.Context, email string) ([]events.Summary, error) {
	return s.listByCreatorFn(ctx, email)
}

func (s *stubEvents) GetDetail(ctx context.Context, id int64) (*events.Detail, error) {
	return s.getDetailFn(ctx, id)
}

func (s *stubEvents) GetCreator(ctx context.Context, id int64) (string, error) {
	return s.getCreatorFn(ctx, id)
}

func (s *stubEvents) Create(ctx context.Context, params events.CreateParams) (int64, error) {
	return s.createFn(ctx, params)
}

func (s *stubEvents) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

type stubOrganizations struct {
	listFn func(ctx context.Context) ([]organizations.Organization, error)
}

func (s *stubOrganizations) List(ctx context.Context) ([]organizations.Organization, error) {
	return s.listFn(ctx)
}

type stubVenues struct {
	listFn func(ctx context.Context) ([]venues.Venue, error)
}

func (s *stubVenues) List(ctx context.Context) ([]venues.Venue, error) {
	return s.listFn(ctx)
}

func testTemplates(t *testing.T) *template.Template {
	t.Helper()

	tmpl, err := template.ParseGlob("../../../web/templates/*.html")
	require.NoError(t, err)
	return tmpl
}

func testSessionManager() *auth.SessionManager {
	return auth.NewSessionManager("handler-test-secret", time.Hour, "campusboard")
}

// asUser runs the handler behind the session middleware with a valid
// cookie for the given identity, the way the router wires it.
func asUser(t *testing.T, manager *auth.SessionManager, email, name string, h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	token, err := manager.Issue(email, name)
	require.NoError(t, err)
	r.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})

	w := httptest.NewRecorder()
	middleware.SessionUser(manager)(h).ServeHTTP(w, r)
	return w
}

func flashMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "campusboard_flash" && cookie.MaxAge > 0 {
			decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
			require.NoError(t, err)
			return string(decoded)
		}
	}
	return ""
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == auth.SessionCookieName {
			return cookie
		}
	}
	return nil
}
