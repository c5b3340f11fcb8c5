// Package flash implements one-shot messages carried in a short-lived
// cookie and consumed on the next page render.
package flash

import (
	"encoding/base64"
	"net/http"
)

const cookieName = "campusboard_flash"

// Set stores a message to be shown on the next rendered page.
func Set(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.URLEncoding.EncodeToString([]byte(message)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Take reads and clears the pending message, if any.
func Take(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// Redirect sets a flash message and redirects in one step.
func Redirect(w http.ResponseWriter, r *http.Request, url, message string) {
	Set(w, message)
	http.Redirect(w, r, url, http.StatusFound)
}
