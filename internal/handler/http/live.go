package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/adapter"
	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/service"
	"github.com/MKhiriev/climate-dashboard/models"
)

func (h *Handler) fetchLivePage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, citiesData{Cities: h.services.ClimateService.SuggestedCities()})
}

// fetchLive stores the current weather of the submitted city. Either way
// the client lands on the dashboard with a flash describing the outcome.
func (h *Handler) fetchLive(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	city := service.CityOrDefault(r.PostFormValue("city"))

	record, err := h.services.ClimateService.FetchLive(r.Context(), city)
	if err != nil {
		if errors.Is(err, adapter.ErrWeatherUnavailable) {
			log.Warn().Err(err).Str("city", city).Msg("live weather unavailable")
			h.redirectWithFlash(w, r, "/dashboard", models.FlashDanger, fmt.Sprintf(app.MsgLiveWeatherFailedf, city))
			return
		}
		log.Err(err).Str("city", city).Msg("error storing live weather")
		internalError(w)
		return
	}

	log.Info().Int64("id", record.ID).Str("city", city).Msg("live weather stored")
	h.redirectWithFlash(w, r, "/dashboard", models.FlashSuccess, fmt.Sprintf(app.MsgLiveWeatherSavedf, city))
}
