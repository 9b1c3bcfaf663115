package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://api.openweathermap.org", 5*time.Second)
//	resp, err := client.R().Get("/data/2.5/weather")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client bound to baseURL whose requests give up
// after timeout. A trailing slash on baseURL is dropped so that request
// paths can always start with "/".
//
// Each call returns an independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
