package http

import (
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/models"
)

// page is the JSON envelope of every page response. Flashes queued by an
// earlier redirect are delivered here once.
type page struct {
	Flashes []models.Flash `json:"flashes"`
	Data    any            `json:"data,omitempty"`
}

type loginForm struct {
	Email string `json:"email"`
}

type registerForm struct {
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  models.Role   `json:"role"`
	Roles []models.Role `json:"roles"`
}

type dashboardData struct {
	User    string                 `json:"user"`
	Role    models.Role            `json:"role"`
	Records []models.ClimateRecord `json:"records"`
	Stats   models.Summary         `json:"stats"`
}

type recordData struct {
	Record models.ClimateRecord `json:"record"`
}

type reportData struct {
	Rows []models.CountryReport `json:"rows"`
}

type researchersData struct {
	Researchers []models.Researcher `json:"researchers"`
}

type citiesData struct {
	Cities []string `json:"cities"`
}

var registrableRoles = []models.Role{models.RoleViewer, models.RoleResearcher, models.RoleAdmin}

// writePage writes data in the page envelope together with the pending
// flashes and extra, then clears the flash cookie.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, status int, data any, extra ...models.Flash) {
	flashes := append(h.pendingFlashes(r), extra...)
	if flashes == nil {
		flashes = []models.Flash{}
	}

	if _, err := r.Cookie(flashCookieName); err == nil {
		http.SetCookie(w, expiredCookie(flashCookieName))
	}

	if _, err := utils.WriteJSON(w, page{Flashes: flashes, Data: data}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing page")
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func internalError(w http.ResponseWriter) {
	http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
}

func danger(message string) models.Flash {
	return models.Flash{Category: models.FlashDanger, Message: message}
}

func success(message string) models.Flash {
	return models.Flash{Category: models.FlashSuccess, Message: message}
}
