package adapter

import "errors"

// ErrWeatherUnavailable is the absence of a usable observation. Every error
// returned by [WeatherAdapter.Fetch] wraps it.
var ErrWeatherUnavailable = errors.New("weather data unavailable")

// Causes wrapped together with [ErrWeatherUnavailable].
var (
	ErrUnauthorized  = errors.New("weather api key rejected")
	ErrCityNotFound  = errors.New("city not found")
	ErrUpstream      = errors.New("weather provider error")
	ErrBadPayload    = errors.New("undecodable weather payload")
	ErrTransport     = errors.New("weather request failed")
	ErrInvalidConfig = errors.New("invalid weather adapter configuration")
)
