// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux shaped like the dashboard routes.
// It does not use Handler.Init() to avoid service setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("form"))
	})
	router.Post("/add", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	router.Get("/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/update/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})
	router.Get("/chart_data", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /add registered", http.MethodGet, "/add", http.StatusOK},
		{"POST /add registered", http.MethodPost, "/add", http.StatusSeeOther},
		{"GET /update/{id} registered", http.MethodGet, "/update/7", http.StatusOK},
		{"POST /update/{id} registered", http.MethodPost, "/update/7", http.StatusSeeOther},
		{"DELETE /add not registered", http.MethodDelete, "/add", http.StatusNotFound},
		{"PUT /update/{id} not registered", http.MethodPut, "/update/7", http.StatusNotFound},
		{"POST /chart_data not registered", http.MethodPost, "/chart_data", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/add", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "form", rr.Body.String())
}

func TestCheckHTTPMethod_NeverMethodNotAllowed(t *testing.T) {
	router := buildRouter()

	for _, method := range []string{http.MethodPatch, http.MethodOptions, http.MethodHead, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/chart_data", nil))

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}
