package handlers

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/campusboard/server/internal/api/flash"
	"github.com/campusboard/server/internal/api/middleware"
)

// pageData assembles the fields every page template expects: title,
// current user, pending flash, and the CSRF form field.
func pageData(w http.ResponseWriter, r *http.Request, title string) map[string]interface{} {
	return map[string]interface{}{
		"Title":     title,
		"User":      middleware.CurrentUser(r),
		"Flash":     flash.Take(w, r),
		"CSRFField": template.HTML(middleware.CSRFTemplateField(r)),
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, templates *template.Template, name string, data map[string]interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("template", name).Msg("template error")
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}
