package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/service"
	"github.com/MKhiriev/climate-dashboard/models"
)

const (
	actionUpdateInfo     = "update_info"
	actionChangePassword = "change_password"
)

func (h *Handler) profilePage(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, currentSession(r), http.StatusOK)
}

// updateProfile dispatches on the form's action field. Unknown actions just
// render the profile.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	session := currentSession(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	switch r.PostFormValue("action") {
	case actionUpdateInfo:
		h.updateInfo(w, r, session)
	case actionChangePassword:
		h.changePassword(w, r, session)
	default:
		h.writeProfile(w, r, session, http.StatusOK)
	}
}

func (h *Handler) updateInfo(w http.ResponseWriter, r *http.Request, session models.Session) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	update := models.ProfileUpdate{
		Name:  r.PostFormValue("name"),
		Email: r.PostFormValue("email"),
	}

	refreshed, err := h.services.AccountService.UpdateProfile(ctx, session, update)
	if err != nil {
		h.rejectProfileForm(w, r, session, err)
		return
	}

	token, err := h.services.AuthService.IssueSession(ctx, refreshed)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		internalError(w)
		return
	}
	h.setSessionCookie(w, token)

	h.writeProfile(w, r, refreshed, http.StatusOK, success(app.MsgProfileUpdated))
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request, session models.Session) {
	change := models.PasswordChange{
		Current: r.PostFormValue("current_password"),
		New:     r.PostFormValue("new_password"),
		Confirm: r.PostFormValue("confirm_password"),
	}

	if err := h.services.AccountService.ChangePassword(r.Context(), session, change); err != nil {
		h.rejectProfileForm(w, r, session, err)
		return
	}

	h.writeProfile(w, r, session, http.StatusOK, success(app.MsgPasswordChanged))
}

func (h *Handler) rejectProfileForm(w http.ResponseWriter, r *http.Request, session models.Session, err error) {
	message, ok := messageFromError(err)
	if !ok {
		logger.FromRequest(r).Err(err).Msg("unexpected error occurred during profile update")
		internalError(w)
		return
	}
	if errors.Is(err, service.ErrPasswordsDoNotMatch) {
		message = app.MsgNewPasswordsDoNotMatch
	}

	logger.FromRequest(r).Info().Err(err).Msg("profile form rejected")
	h.writeProfile(w, r, session, statusFromError(err), danger(message))
}

func (h *Handler) writeProfile(w http.ResponseWriter, r *http.Request, session models.Session, status int, flashes ...models.Flash) {
	profile, err := h.services.AccountService.Profile(r.Context(), session)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("id", session.UserID).Msg("error loading profile")
		internalError(w)
		return
	}

	h.writePage(w, r, status, profile, flashes...)
}
