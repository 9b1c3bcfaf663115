package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/climate-dashboard/models"
)

// WeatherAdapter retrieves current conditions for a city from an external
// provider and maps them onto a climate record.
type WeatherAdapter interface {
	// Fetch returns an unsaved record for city, or an error wrapping
	// ErrWeatherUnavailable when the provider gave no usable answer.
	Fetch(ctx context.Context, city string) (models.ClimateRecord, error)
}
