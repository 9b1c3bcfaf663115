package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/climate-dashboard/internal/adapter"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/observability"
	"github.com/MKhiriev/climate-dashboard/internal/store"
	"github.com/MKhiriev/climate-dashboard/models"
)

const (
	// RecentLimit is the number of records shown on the dashboard.
	RecentLimit = 50

	// DefaultCity is fetched when no city is submitted.
	DefaultCity = "Chennai"
)

var suggestedCities = []string{"Chennai", "Delhi", "New York", "London", "Tokyo"}

// CityOrDefault trims city and falls back to [DefaultCity].
func CityOrDefault(city string) string {
	if city = strings.TrimSpace(city); city != "" {
		return city
	}
	return DefaultCity
}

type climateService struct {
	records store.ClimateRepository
	weather adapter.WeatherAdapter
	metrics *observability.Metrics

	logger *logger.Logger
}

// NewClimateService constructs a ClimateService persisting through records
// and ingesting live observations from weather.
func NewClimateService(records store.ClimateRepository, weather adapter.WeatherAdapter, metrics *observability.Metrics, logger *logger.Logger) ClimateService {
	return &climateService{
		records: records,
		weather: weather,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *climateService) Create(ctx context.Context, record models.ClimateRecord) (int64, error) {
	id, err := c.records.Create(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("record creation failed: %w", err)
	}

	c.metrics.RecordWritten(observability.OpCreate)
	logger.FromContext(ctx).Info().Int64("id", id).Str("country", record.Country).Msg("climate record added")
	return id, nil
}

func (c *climateService) Get(ctx context.Context, id int64) (models.ClimateRecord, error) {
	return c.records.Get(ctx, id)
}

// RecentRecords returns the [RecentLimit] newest records.
func (c *climateService) RecentRecords(ctx context.Context) ([]models.ClimateRecord, error) {
	return c.records.ListRecent(ctx, RecentLimit)
}

// Update overwrites every field of the record with record.ID.
// A missing record yields store.ErrRecordNotFound.
func (c *climateService) Update(ctx context.Context, record models.ClimateRecord) error {
	if err := c.records.Update(ctx, record); err != nil {
		return fmt.Errorf("record update failed: %w", err)
	}

	c.metrics.RecordWritten(observability.OpUpdate)
	return nil
}

// Delete removes the record. Deleting an absent record is not an error.
func (c *climateService) Delete(ctx context.Context, id int64) error {
	if err := c.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("record deletion failed: %w", err)
	}

	c.metrics.RecordWritten(observability.OpDelete)
	return nil
}

// FetchLive pulls the current weather for city and stores it. An empty city
// means [DefaultCity]. When the provider gives no usable answer the error
// wraps adapter.ErrWeatherUnavailable and nothing is stored.
func (c *climateService) FetchLive(ctx context.Context, city string) (models.ClimateRecord, error) {
	log := logger.FromContext(ctx)
	city = CityOrDefault(city)

	record, err := c.weather.Fetch(ctx, city)
	if err != nil {
		if errors.Is(err, adapter.ErrWeatherUnavailable) {
			c.metrics.WeatherFetched(observability.OutcomeUnavailable)
		} else {
			c.metrics.WeatherFetched(observability.OutcomeError)
		}
		log.Warn().Err(err).Str("city", city).Msg("live weather fetch failed")
		return models.ClimateRecord{}, err
	}
	c.metrics.WeatherFetched(observability.OutcomeSuccess)

	id, err := c.records.Create(ctx, record)
	if err != nil {
		log.Err(err).Str("city", city).Msg("saving live weather failed")
		return models.ClimateRecord{}, fmt.Errorf("saving live weather failed: %w", err)
	}
	c.metrics.RecordWritten(observability.OpFetch)

	record.ID = id
	log.Info().Int64("id", id).Str("city", city).Msg("live weather saved")
	return record, nil
}

// SuggestedCities lists the cities offered on the live fetch page.
func (c *climateService) SuggestedCities() []string {
	cities := make([]string, len(suggestedCities))
	copy(cities, suggestedCities)
	return cities
}
