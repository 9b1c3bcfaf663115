package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/app"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/models"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	session := currentSession(r)

	records, err := h.services.ClimateService.RecentRecords(ctx)
	if err != nil {
		log.Err(err).Msg("error listing recent records")
		internalError(w)
		return
	}

	stats, err := h.services.StatsService.Summary(ctx)
	if err != nil {
		log.Err(err).Msg("error computing summary")
		internalError(w)
		return
	}

	h.writePage(w, r, http.StatusOK, dashboardData{
		User:    session.UserName,
		Role:    session.Role,
		Records: nonNil(records),
		Stats:   stats,
	})
}

// latestData serves the dashboard's polling endpoint as a bare JSON array.
func (h *Handler) latestData(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.ClimateService.RecentRecords(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error listing recent records")
		internalError(w)
		return
	}

	h.writeJSON(w, r, nonNil(records))
}

func (h *Handler) addPage(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, recordForm{})
}

func (h *Handler) addRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	form := readRecordForm(r)
	record, err := form.record()
	if err != nil {
		h.rejectRecordForm(w, r, form, err)
		return
	}

	id, err := h.services.ClimateService.Create(ctx, record)
	if err != nil {
		log.Err(err).Msg("error creating record")
		internalError(w)
		return
	}

	log.Info().Int64("id", id).Msg("record created")
	h.redirectWithFlash(w, r, "/dashboard", models.FlashSuccess, app.MsgRecordAdded)
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := recordID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	record, err := h.services.ClimateService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			h.redirectWithFlash(w, r, "/dashboard", models.FlashDanger, app.MsgRecordNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("error reading record")
		internalError(w)
		return
	}

	h.writePage(w, r, http.StatusOK, recordData{Record: record})
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := recordID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err = r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	form := readRecordForm(r)
	record, err := form.record()
	if err != nil {
		h.rejectRecordForm(w, r, form, err)
		return
	}
	record.ID = id

	if err = h.services.ClimateService.Update(ctx, record); err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			h.redirectWithFlash(w, r, "/dashboard", models.FlashDanger, app.MsgRecordNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("error updating record")
		internalError(w)
		return
	}

	h.redirectWithFlash(w, r, "/dashboard", models.FlashSuccess, app.MsgRecordUpdated)
}

// deleteRecord succeeds for ids that do not exist.
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id, err := recordID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err = h.services.ClimateService.Delete(r.Context(), id); err != nil {
		logger.FromRequest(r).Err(err).Int64("id", id).Msg("error deleting record")
		internalError(w)
		return
	}

	h.redirectWithFlash(w, r, "/dashboard", models.FlashInfo, app.MsgRecordDeleted)
}

func (h *Handler) rejectRecordForm(w http.ResponseWriter, r *http.Request, form recordForm, err error) {
	message, _ := messageFromError(err)
	logger.FromRequest(r).Info().Err(err).Msg("record form rejected")
	h.writePage(w, r, statusFromError(err), form, danger(message))
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
