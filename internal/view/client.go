package view

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fakhrymubarak/weather-lookup/internal/middleware"
)

// Client calls the weather proxy endpoint on behalf of the page.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the proxy served under baseURL.
func NewClient(baseURL string, httpClient ...*http.Client) *Client {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &Client{baseURL: baseURL, httpClient: client}
}

// Weather performs GET {baseURL}/api/weather?city=<city> and returns the status
// code and the raw body. Any status is returned without error.
func (c *Client) Weather(ctx context.Context, city string) (int, []byte, error) {
	u := c.baseURL + "/api/weather?" + url.Values{"city": {city}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, nil, err
	}
	if id := middleware.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(middleware.RequestIDHeader, id)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("reading proxy response: %w", err)
	}
	return resp.StatusCode, body, nil
}
