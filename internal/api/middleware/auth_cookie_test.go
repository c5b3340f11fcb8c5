package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusboard/server/internal/auth"
)

func sessionManager() *auth.SessionManager {
	return auth.NewSessionManager("test-secret", time.Hour, "campusboard")
}

func userEcho(t *testing.T, want *auth.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := CurrentUser(r)
		if want == nil {
			require.Nil(t, got)
		} else {
			require.NotNil(t, got)
			require.Equal(t, want.Email, got.Email)
			require.Equal(t, want.Name, got.Name)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionUserValidCookie(t *testing.T) {
	m := sessionManager()
	token, err := m.Issue("a@b.com", "A")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	res := httptest.NewRecorder()

	SessionUser(m)(userEcho(t, &auth.User{Email: "a@b.com", Name: "A"})).ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestSessionUserNoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	SessionUser(sessionManager())(userEcho(t, nil)).ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestSessionUserBadCookieIsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})
	res := httptest.NewRecorder()

	SessionUser(sessionManager())(userEcho(t, nil)).ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)
}

func TestRequireUserRedirectsAnonymous(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	res := httptest.NewRecorder()

	called := false
	RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(res, req)

	require.False(t, called)
	require.Equal(t, http.StatusFound, res.Code)
	require.Equal(t, "/login", res.Header().Get("Location"))
}

func TestRequireUserPassesAuthenticated(t *testing.T) {
	m := sessionManager()
	token, err := m.Issue("a@b.com", "A")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	res := httptest.NewRecorder()

	called := false
	SessionUser(m)(RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))).ServeHTTP(res, req)

	require.True(t, called)
	require.Equal(t, http.StatusOK, res.Code)
}
