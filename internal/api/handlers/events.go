package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/campusboard/server/internal/api/flash"
	"github.com/campusboard/server/internal/api/middleware"
	"github.com/campusboard/server/internal/domain/events"
	"github.com/campusboard/server/internal/domain/organizations"
	"github.com/campusboard/server/internal/domain/venues"
	"github.com/campusboard/server/internal/validation"
)

type EventsHandler struct {
	Events        *events.Service
	Organizations *organizations.Service
	Venues        *venues.Service
	Templates     *template.Template
}

func NewEventsHandler(
	eventsSvc *events.Service,
	orgSvc *organizations.Service,
	venuesSvc *venues.Service,
	templates *template.Template,
) *EventsHandler {
	return &EventsHandler{
		Events:        eventsSvc,
		Organizations: orgSvc,
		Venues:        venuesSvc,
		Templates:     templates,
	}
}

// Home handles GET /. A listing failure still renders the page, with an
// inline error instead of a server error.
func (h *EventsHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pageData(w, r, "Upcoming events")

	items, err := h.Events.List(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list events")
		data["Error"] = "Events are unavailable right now, please try again later."
	} else {
		data["Events"] = items
	}

	renderPage(w, r, h.Templates, "home.html", data)
}

// Detail handles GET /events/{id}.
func (h *EventsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		flash.Redirect(w, r, "/", "Event not found.")
		return
	}

	detail, err := h.Events.GetDetail(r.Context(), id)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			flash.Redirect(w, r, "/", "Event not found.")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int64("event_id", id).Msg("get event")
		flash.Redirect(w, r, "/", "Events are unavailable right now, please try again later.")
		return
	}

	data := pageData(w, r, detail.Name)
	data["Event"] = detail

	if user := middleware.CurrentUser(r); user != nil {
		creator, err := h.Events.Creator(r.Context(), id)
		data["IsOwner"] = err == nil && creator == user.Email
	}

	renderPage(w, r, h.Templates, "event_detail.html", data)
}

// NewForm handles GET /events/new.
func (h *EventsHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.Organizations.List(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list organizations")
		flash.Redirect(w, r, "/", "The event form is unavailable right now.")
		return
	}

	venueList, err := h.Venues.List(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list venues")
		flash.Redirect(w, r, "/", "The event form is unavailable right now.")
		return
	}

	data := pageData(w, r, "Create an event")
	data["Organizations"] = orgs
	data["Venues"] = venueList

	renderPage(w, r, h.Templates, "event_new.html", data)
}

// Create handles POST /events/new.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		flash.Redirect(w, r, "/login", "Please log in first.")
		return
	}

	if err := r.ParseForm(); err != nil {
		flash.Redirect(w, r, "/events/new", "Invalid form submission.")
		return
	}

	form := validation.EventForm{
		Name:        r.PostFormValue("event_name"),
		OrgName:     r.PostFormValue("org_name"),
		VenueID:     r.PostFormValue("vid"),
		Date:        r.PostFormValue("date"),
		StartTime:   r.PostFormValue("start_time"),
		EndTime:     r.PostFormValue("end_time"),
		RoomNumber:  r.PostFormValue("room_number"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
	}

	id, err := h.Events.Create(r.Context(), form, user.Email)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrVenueNotFound):
			flash.Redirect(w, r, "/events/new", "That venue does not exist.")
		case errors.Is(err, events.ErrOrganizationNotFound):
			flash.Redirect(w, r, "/events/new", "That organization does not exist.")
		case errors.Is(err, validation.ErrInvalidPrice):
			flash.Redirect(w, r, "/events/new", "Price must be a non-negative number.")
		case errors.Is(err, events.ErrInvalidVenueID):
			flash.Redirect(w, r, "/events/new", "Please pick a venue from the list.")
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("create event")
			flash.Redirect(w, r, "/events/new", capitalize(err.Error())+".")
		}
		return
	}

	flash.Redirect(w, r, "/events/"+strconv.FormatInt(id, 10), "Event created.")
}

// Delete handles POST /events/{id}/delete. Only the creator may delete.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r)
	if user == nil {
		flash.Redirect(w, r, "/login", "Please log in first.")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		flash.Redirect(w, r, "/", "Event not found.")
		return
	}

	if err := h.Events.Delete(r.Context(), id, user.Email); err != nil {
		switch {
		case errors.Is(err, events.ErrNotFound):
			flash.Redirect(w, r, "/", "Event not found.")
		case errors.Is(err, events.ErrNotOwner):
			flash.Redirect(w, r, "/", "You are not allowed to delete this event.")
		default:
			zerolog.Ctx(r.Context()).Error().Err(err).Int64("event_id", id).Msg("delete event")
			flash.Redirect(w, r, "/", "Could not delete the event, please try again.")
		}
		return
	}

	flash.Redirect(w, r, "/", "Event deleted.")
}
