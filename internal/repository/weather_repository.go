package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

var ErrExternalAPI = errors.New("external API error")

// ProviderResponse is the untouched outbound reply. Body is kept as raw bytes
// because the provider does not always answer with valid JSON.
type ProviderResponse struct {
	StatusCode int
	Body       []byte
}

// WeatherRepository defines the interface for weather data access
type WeatherRepository interface {
	FetchCurrent(ctx context.Context, city string) (*ProviderResponse, error)
}

// weatherRepository implements WeatherRepository against the Weatherstack API
type weatherRepository struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewWeatherRepository creates a repository for the provider at baseURL using
// apiKey as the access key. The default HTTP client is used if none is given.
func NewWeatherRepository(baseURL, apiKey string, httpClient ...*http.Client) WeatherRepository {
	client := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		client = httpClient[0]
	}
	return &weatherRepository{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

// FetchCurrent issues a single GET to {baseURL}/current for city.
// Transport failures are wrapped in ErrExternalAPI; HTTP status is not judged here.
func (r *weatherRepository) FetchCurrent(ctx context.Context, city string) (*ProviderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.currentURL(city), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalAPI, stripURL(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrExternalAPI, err)
	}

	return &ProviderResponse{StatusCode: resp.StatusCode, Body: body}, nil
}

func (r *weatherRepository) currentURL(city string) string {
	q := url.Values{}
	q.Set("access_key", r.apiKey)
	q.Set("query", city)
	return r.baseURL + "/current?" + q.Encode()
}

// stripURL drops the request URL from client errors so the access key never
// ends up in an error message.
func stripURL(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return fmt.Errorf("%s: %w", uerr.Op, uerr.Err)
	}
	return err
}
