package api

import (
	"net/http"

	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the visitor's session id.
const SessionCookie = "pd_session"

// EnsureSession returns the caller's session id, issuing a fresh one when
// the cookie is missing or malformed.
func EnsureSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
