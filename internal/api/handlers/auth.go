package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusboard/server/internal/api/flash"
	"github.com/campusboard/server/internal/api/middleware"
	"github.com/campusboard/server/internal/auth"
	"github.com/campusboard/server/internal/domain/users"
)

type AuthHandler struct {
	Users     *users.Service
	Sessions  *auth.SessionManager
	Templates *template.Template
}

func NewAuthHandler(usersSvc *users.Service, sessions *auth.SessionManager, templates *template.Template) *AuthHandler {
	return &AuthHandler{
		Users:     usersSvc,
		Sessions:  sessions,
		Templates: templates,
	}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderPage(w, r, h.Templates, "login.html", pageData(w, r, "Log in"))
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Redirect(w, r, "/login", "Invalid email or password.")
		return
	}

	user, err := h.Users.Authenticate(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		// Same message for unknown email and wrong password.
		flash.Redirect(w, r, "/login", "Invalid email or password.")
		return
	}

	if err := h.startSession(w, r, user); err != nil {
		flash.Redirect(w, r, "/login", "Something went wrong, please try again.")
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// SignupPage handles GET /signup.
func (h *AuthHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if middleware.CurrentUser(r) != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	renderPage(w, r, h.Templates, "signup.html", pageData(w, r, "Sign up"))
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		flash.Redirect(w, r, "/signup", "Invalid form submission.")
		return
	}

	user, err := h.Users.Signup(r.Context(), users.SignupParams{
		Email:    r.PostFormValue("email"),
		Name:     r.PostFormValue("name"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			flash.Redirect(w, r, "/login", "Email already exists.")
			return
		}
		flash.Redirect(w, r, "/signup", capitalize(err.Error())+".")
		return
	}

	if err := h.startSession(w, r, user); err != nil {
		flash.Redirect(w, r, "/login", "Account created, please log in.")
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *users.User) error {
	token, err := h.Sessions.Issue(user.Email, user.Name)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("issue session token")
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.Sessions.Expiry().Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
