package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessionFromCookie(r); ok {
		utils.SeeOther(w, r, "/dashboard")
		return
	}

	h.writePage(w, r, http.StatusOK, loginForm{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.sessionFromCookie(r); ok {
		utils.SeeOther(w, r, "/dashboard")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	credentials := models.Credentials{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	session, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		message, ok := messageFromError(err)
		if !ok {
			log.Err(err).Msg("unexpected error occurred during login")
			internalError(w)
			return
		}

		log.Info().Err(err).Msg("login rejected")
		h.writePage(w, r, statusFromError(err), loginForm{Email: strings.TrimSpace(credentials.Email)}, danger(message))
		return
	}

	token, err := h.services.AuthService.IssueSession(ctx, session)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		internalError(w)
		return
	}

	log.Debug().Int64("id", session.UserID).Msg("user successfully logged in")

	h.setSessionCookie(w, token)
	h.redirectWithFlash(w, r, "/dashboard", models.FlashSuccess, fmt.Sprintf(app.MsgWelcomeBackf, session.UserName))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	h.redirectWithFlash(w, r, "/", models.FlashInfo, app.MsgLoggedOut)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessionFromCookie(r); ok {
		utils.SeeOther(w, r, "/dashboard")
		return
	}

	h.writePage(w, r, http.StatusOK, registerForm{Role: models.RoleViewer, Roles: registrableRoles})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.sessionFromCookie(r); ok {
		utils.SeeOther(w, r, "/dashboard")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	registration := models.Registration{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
		Confirm:  r.PostFormValue("confirm"),
		Role:     models.Role(strings.TrimSpace(r.PostFormValue("role"))),
	}

	user, err := h.services.AuthService.Register(ctx, registration)
	if err != nil {
		message, ok := messageFromError(err)
		if !ok {
			log.Err(err).Msg("unexpected error occurred during user registration")
			internalError(w)
			return
		}

		form := registerForm{
			Name:  strings.TrimSpace(registration.Name),
			Email: strings.TrimSpace(registration.Email),
			Role:  registration.Role,
			Roles: registrableRoles,
		}
		if form.Role == "" {
			form.Role = models.RoleViewer
		}

		log.Info().Err(err).Msg("registration rejected")
		h.writePage(w, r, statusFromError(err), form, danger(message))
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user registered")

	h.redirectWithFlash(w, r, "/", models.FlashSuccess, app.MsgAccountCreated)
}
