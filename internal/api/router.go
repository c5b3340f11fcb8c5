package api

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campusboard/server/internal/api/handlers"
	"github.com/campusboard/server/internal/api/middleware"
	"github.com/campusboard/server/internal/auth"
	"github.com/campusboard/server/internal/config"
	"github.com/campusboard/server/internal/domain/events"
	"github.com/campusboard/server/internal/domain/organizations"
	"github.com/campusboard/server/internal/domain/users"
	"github.com/campusboard/server/internal/domain/venues"
	"github.com/campusboard/server/internal/metrics"
	"github.com/campusboard/server/internal/storage/mysql"
)

const sessionIssuer = "campusboard"

// NewRouter wires services, handlers, and the middleware chain into the
// server's single HTTP handler.
func NewRouter(cfg config.Config, logger zerolog.Logger, repo *mysql.Repository, templates *template.Template) http.Handler {
	sessions := auth.NewSessionManager(cfg.Session.Secret, cfg.Session.Expiry, sessionIssuer)

	usersService := users.NewService(repo.Users())
	eventsService := events.NewService(repo.Events())
	orgService := organizations.NewService(repo.Organizations())
	venuesService := venues.NewService(repo.Venues())

	authHandler := handlers.NewAuthHandler(usersService, sessions, templates)
	eventsHandler := handlers.NewEventsHandler(eventsService, orgService, venuesService, templates)
	profileHandler := handlers.NewProfileHandler(usersService, eventsService, templates)
	tablesHandler := handlers.NewTablesHandler(repo.Schema())

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", eventsHandler.Home)
	mux.HandleFunc("GET /login", authHandler.LoginPage)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("GET /signup", authHandler.SignupPage)
	mux.HandleFunc("POST /signup", authHandler.Signup)
	mux.HandleFunc("GET /logout", authHandler.Logout)

	mux.Handle("GET /profile", middleware.RequireUser(http.HandlerFunc(profileHandler.Show)))
	mux.Handle("GET /events/new", middleware.RequireUser(http.HandlerFunc(eventsHandler.NewForm)))
	mux.Handle("POST /events/new", middleware.RequireUser(http.HandlerFunc(eventsHandler.Create)))
	mux.HandleFunc("GET /events/{id}", eventsHandler.Detail)
	mux.Handle("POST /events/{id}/delete", middleware.RequireUser(http.HandlerFunc(eventsHandler.Delete)))

	mux.HandleFunc("GET /table", tablesHandler.List)
	mux.Handle("GET /healthz", handlers.Healthz(repo.DB()))
	mux.Handle("GET /metrics", metrics.Handler())

	// Outermost first: correlation, request log, metrics, headers, then
	// the cookie-dependent layers.
	var handler http.Handler = mux
	handler = middleware.SessionUser(sessions)(handler)
	handler = middleware.CSRFProtection([]byte(cfg.Session.CSRFSecret), cfg.Environment == "production")(handler)
	handler = middleware.SecurityHeaders(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}
