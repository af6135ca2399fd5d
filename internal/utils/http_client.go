package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.example.com", 0)
//	resp, err := client.R().Get("/documents")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient bound to baseURL.
//
// A positive timeout bounds every request. Zero keeps resty's default, which
// is no timeout: processing a long recording can legitimately take minutes.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
