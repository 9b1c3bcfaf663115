package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a 2xx response and otherwise an error
// wrapping [ErrWeatherUnavailable] and the closest cause.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return mapStatus(resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
}

func mapStatus(code int, body string) error {
	if body == "" {
		body = http.StatusText(code)
	}

	switch code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrWeatherUnavailable, ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrWeatherUnavailable, ErrCityNotFound, body)
	default:
		return fmt.Errorf("%w: %w: http %d: %s", ErrWeatherUnavailable, ErrUpstream, code, body)
	}
}
