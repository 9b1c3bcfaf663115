package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Handle("/metrics", h.metrics.Handler())

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/", h.loginPage)
		r.Post("/", h.login)
		r.Get("/logout", h.logout)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.register)
	})

	// routes with a session
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/dashboard", h.dashboard)
		r.Get("/get_latest_data", h.latestData)

		r.Get("/add", h.addPage)
		r.Post("/add", h.addRecord)
		r.Get("/update/{id}", h.updatePage)
		r.Post("/update/{id}", h.updateRecord)
		r.Get("/delete/{id}", h.deleteRecord)

		r.Get("/report", h.report)
		r.Get("/chart_data", h.chartData)
		r.Get("/researchers", h.researchers)

		r.Get("/fetch_live", h.fetchLivePage)
		r.Post("/fetch_live", h.fetchLive)

		r.Get("/profile", h.profilePage)
		r.Post("/profile", h.updateProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
