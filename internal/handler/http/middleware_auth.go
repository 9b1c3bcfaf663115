package http

import (
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/models"
)

// requireSession guards the dashboard routes.
//
// The session cookie is verified via [service.AuthService.ParseSession]. A
// missing, expired or tampered cookie is cleared and the client is sent back
// to the login page with a warning flash; it is never a hard error. On
// success the [models.Session] is stored in the request context under
// [utils.SessionCtxKey].
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, ok := h.sessionFromCookie(r)
		if !ok {
			log.Debug().Str("uri", r.RequestURI).Msg("no valid session")
			clearSessionCookie(w)
			h.redirectWithFlash(w, r, "/", models.FlashWarning, app.MsgLoginRequired)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}

// currentSession returns the session stored by requireSession.
func currentSession(r *http.Request) models.Session {
	session, _ := utils.GetSessionFromContext(r.Context())
	return session
}
