package http

import (
	"net/http"

	"github.com/MKhiriev/climate-dashboard/internal/logger"
)

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	rows, err := h.services.StatsService.Report(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error building report")
		internalError(w)
		return
	}

	h.writePage(w, r, http.StatusOK, reportData{Rows: nonNil(rows)})
}

// chartData serves the chart series as bare JSON.
func (h *Handler) chartData(w http.ResponseWriter, r *http.Request) {
	series, err := h.services.StatsService.ChartSeries(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error building chart series")
		internalError(w)
		return
	}

	h.writeJSON(w, r, series)
}

func (h *Handler) researchers(w http.ResponseWriter, r *http.Request) {
	researchers, err := h.services.AccountService.ListResearchers(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error listing researchers")
		internalError(w)
		return
	}

	h.writePage(w, r, http.StatusOK, researchersData{Researchers: nonNil(researchers)})
}
