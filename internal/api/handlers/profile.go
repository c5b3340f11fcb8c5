package handlers

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campusboard/server/internal/api/middleware"
	"github.com/campusboard/server/internal/domain/events"
	"github.com/campusboard/server/internal/domain/users"
)

type ProfileHandler struct {
	Users     *users.Service
	Events    *events.Service
	Templates *template.Template
}

func NewProfileHandler(usersSvc *users.Service, eventsSvc *events.Service, templates *template.Template) *ProfileHandler {
	return &ProfileHandler{
		Users:     usersSvc,
		Events:    eventsSvc,
		Templates: templates,
	}
}

// Show handles GET /profile. The route is wrapped in RequireUser, so a
// missing identity here means a middleware wiring bug.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	// Prefer the stored record over the session claims; the name may
	// have changed since the cookie was issued.
	profile, err := h.Users.Get(r.Context(), user.Email)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("load profile")
		profile = &users.User{Email: user.Email, Name: user.Name}
	}

	created, err := h.Events.ListByCreator(r.Context(), user.Email)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list created events")
		created = nil
	}

	data := pageData(w, r, profile.Name)
	data["Profile"] = profile
	data["Events"] = created

	renderPage(w, r, h.Templates, "profile.html", data)
}
