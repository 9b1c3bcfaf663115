package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/climate-dashboard/internal/config"
	"github.com/MKhiriev/climate-dashboard/internal/logger"
	"github.com/MKhiriev/climate-dashboard/internal/utils"
	"github.com/MKhiriev/climate-dashboard/models"
	"github.com/jonboulle/clockwork"
)

const (
	currentWeatherPath = "/data/2.5/weather"

	// PlaceholderCO2 is recorded for live observations; the provider does
	// not report CO2.
	PlaceholderCO2 = 400.0

	// UnknownCountry is used when the provider omits sys.country.
	UnknownCountry = "Unknown"
)

// openWeatherAdapter is the OpenWeatherMap implementation of [WeatherAdapter].
type openWeatherAdapter struct {
	client *utils.HTTPClient
	apiKey string
	clock  clockwork.Clock

	logger *logger.Logger
}

// NewWeatherAdapter constructs an OpenWeatherMap [WeatherAdapter].
// It normalises and validates cfg.BaseURL and bounds every request by
// cfg.Timeout.
func NewWeatherAdapter(cfg config.Weather, clock clockwork.Clock, logger *logger.Logger) (WeatherAdapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: empty api key", ErrInvalidConfig)
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &openWeatherAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		clock:  clock,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// weatherResponse is the subset of the current-weather payload the
// dashboard records.
type weatherResponse struct {
	Cod  statusCode `json:"cod"`
	Dt   int64      `json:"dt"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Rain struct {
		OneHour float64 `json:"1h"`
	} `json:"rain"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	Message string `json:"message"`
}

// statusCode accepts "cod" both as a number (success) and as a string
// (error payloads).
type statusCode int

func (c *statusCode) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*c = statusCode(value)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid cod %q: %w", value, err)
		}
		*c = statusCode(n)
	case nil:
		*c = 0
	default:
		return fmt.Errorf("invalid cod %v", value)
	}
	return nil
}

// Fetch implements [WeatherAdapter]. It GETs the current weather for city
// in metric units and maps it onto an unsaved record:
//   - country:  sys.country, or "Unknown"
//   - region:   city as requested
//   - date:     UTC calendar date of dt
//   - rainfall: rain.1h, or 0
//   - co2:      [PlaceholderCO2]
func (o *openWeatherAdapter) Fetch(ctx context.Context, city string) (models.ClimateRecord, error) {
	log := logger.FromContext(ctx)

	resp, err := o.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":     city,
			"units": "metric",
			"appid": o.apiKey,
		}).
		Get(currentWeatherPath)
	if err != nil {
		log.Err(err).Str("func", "openWeatherAdapter.Fetch").Str("city", city).Msg("weather request failed")
		return models.ClimateRecord{}, fmt.Errorf("%w: %w: %w", ErrWeatherUnavailable, ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "openWeatherAdapter.Fetch").Str("city", city).Int("status", resp.StatusCode()).Msg("weather provider returned an error")
		return models.ClimateRecord{}, err
	}

	var payload weatherResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		log.Err(err).Str("func", "openWeatherAdapter.Fetch").Str("city", city).Msg("failed to decode weather payload")
		return models.ClimateRecord{}, fmt.Errorf("%w: %w: %w", ErrWeatherUnavailable, ErrBadPayload, err)
	}
	if payload.Cod != 200 {
		err = mapStatus(int(payload.Cod), payload.Message)
		log.Warn().Err(err).Str("func", "openWeatherAdapter.Fetch").Str("city", city).Msg("weather payload reports failure")
		return models.ClimateRecord{}, err
	}
	if payload.Main == nil {
		log.Warn().Str("func", "openWeatherAdapter.Fetch").Str("city", city).Msg("weather payload has no readings")
		return models.ClimateRecord{}, fmt.Errorf("%w: %w: missing main readings", ErrWeatherUnavailable, ErrBadPayload)
	}

	return o.toRecord(city, payload), nil
}

func (o *openWeatherAdapter) toRecord(city string, payload weatherResponse) models.ClimateRecord {
	country := payload.Sys.Country
	if country == "" {
		country = UnknownCountry
	}

	observedAt := o.clock.Now()
	if payload.Dt > 0 {
		observedAt = time.Unix(payload.Dt, 0)
	}

	return models.ClimateRecord{
		Country:     country,
		Region:      city,
		Date:        models.NormalizeDate(observedAt.UTC()),
		Temperature: payload.Main.Temp,
		Rainfall:    payload.Rain.OneHour,
		CO2:         PlaceholderCO2,
		Humidity:    payload.Main.Humidity,
	}
}
