package http

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/climate-dashboard/internal/adapter"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/models"
)

func TestFetchLivePage(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.loggedIn()
	svc.climate.EXPECT().SuggestedCities().Return([]string{"Chennai", "Tokyo"})

	rr := serve(h, newGet("/fetch_live", sessionCookie()))

	require.Equal(t, http.StatusOK, rr.Code)
	var data citiesData
	decodePage(t, rr, &data)
	assert.Equal(t, []string{"Chennai", "Tokyo"}, data.Cities)
}

func TestFetchLive(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		wantCity string
		err      error
		wantCat  string
		wantMsg  string
	}{
		{
			name:     "stored",
			city:     "Tokyo",
			wantCity: "Tokyo",
			wantCat:  models.FlashSuccess,
			wantMsg:  "Live weather for Tokyo saved to database!",
		},
		{
			name:     "blank city falls back to the default",
			city:     "  ",
			wantCity: "Chennai",
			wantCat:  models.FlashSuccess,
			wantMsg:  "Live weather for Chennai saved to database!",
		},
		{
			name:     "provider has no answer",
			city:     "Nowhereland",
			wantCity: "Nowhereland",
			err:      fmt.Errorf("%w: %w", adapter.ErrWeatherUnavailable, adapter.ErrCityNotFound),
			wantCat:  models.FlashDanger,
			wantMsg:  "Could not fetch weather for 'Nowhereland'. Check your API key.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTestHandler(t)
			svc.loggedIn()
			svc.climate.EXPECT().
				FetchLive(gomock.Any(), tt.wantCity).
				Return(models.ClimateRecord{ID: 5, Country: "JP"}, tt.err)

			rr := serve(h, newPost("/fetch_live", url.Values{"city": {tt.city}}, sessionCookie()))

			assertRedirect(t, rr, "/dashboard")
			assert.Equal(t, []models.Flash{{Category: tt.wantCat, Message: tt.wantMsg}}, redirectFlashes(t, h, rr))
		})
	}
}

func TestFetchLive_StorageFailure(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.loggedIn()
	svc.climate.EXPECT().FetchLive(gomock.Any(), "Tokyo").Return(models.ClimateRecord{}, store.ErrExecutingStatement)

	rr := serve(h, newPost("/fetch_live", url.Values{"city": {"Tokyo"}}, sessionCookie()))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
