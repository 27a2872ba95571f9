package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client so adapters can share one construction
// path and still call every resty method directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. An empty baseURL leaves
// requests absolute; a zero timeout means no client-side timeout.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 30*time.Second)
//	resp, err := client.R().SetResult(&info).Get("/api/assets/1")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New()
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
