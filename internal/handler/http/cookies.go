package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/models"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"

	// flashMaxAge bounds how long an unread flash survives.
	flashMaxAge = 60
)

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.SessionToken) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time.UTC()
	}
	http.SetCookie(w, cookie)
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, expiredCookie(sessionCookieName))
}

// sessionFromCookie verifies the session cookie of r, if any.
func (h *Handler) sessionFromCookie(r *http.Request) (models.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return models.Session{}, false
	}

	session, err := h.services.AuthService.ParseSession(r.Context(), cookie.Value)
	if err != nil {
		return models.Session{}, false
	}
	return session, true
}

// encodeFlashes serializes flashes into "payload.signature", where the
// signature is an HMAC of the payload under the handler's cookie key.
func (h *Handler) encodeFlashes(flashes []models.Flash) (string, error) {
	raw, err := json.Marshal(flashes)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	return payload + "." + utils.HashString(payload, h.cookieKey), nil
}

// decodeFlashes returns nil for anything not signed with the cookie key.
func (h *Handler) decodeFlashes(value string) []models.Flash {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok || !utils.EqualConstantTime(signature, utils.HashString(payload, h.cookieKey)) {
		return nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}

	var flashes []models.Flash
	if err = json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}

// pendingFlashes reads the unread flashes carried by r.
func (h *Handler) pendingFlashes(r *http.Request) []models.Flash {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	return h.decodeFlashes(cookie.Value)
}

// redirectWithFlash queues a flash for the next page and redirects with 303.
// Flashes not yet shown are kept.
func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, location, category, message string) {
	flashes := append(h.pendingFlashes(r), models.Flash{Category: category, Message: message})

	value, err := h.encodeFlashes(flashes)
	if err == nil {
		http.SetCookie(w, &http.Cookie{
			Name:     flashCookieName,
			Value:    value,
			Path:     "/",
			MaxAge:   flashMaxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	utils.SeeOther(w, r, location)
}

func expiredCookie(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
