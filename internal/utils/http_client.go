package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so outbound adapters get the whole resty
// API plus a shared base configuration.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL whose requests give up
// after timeout. A zero timeout leaves requests bounded only by their
// context.
//
//	client := utils.NewHTTPClient("https://api.cloudinary.com", 30*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/v1_1/demo/resources")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
