package service

import (
	"context"
	"errors"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-lookup/internal/repository"
)

// WeatherServiceInterface defines the interface for weather service
type WeatherServiceInterface interface {
	GetWeather(ctx context.Context, city string) ([]byte, error)
}

// WeatherService validates provider replies before they are forwarded
type WeatherService struct {
	WeatherRepo repository.WeatherRepository
	logger      *zap.SugaredLogger
}

// NewWeatherService creates a new weather service. A nil logger discards output.
func NewWeatherService(repo repository.WeatherRepository, logger *zap.SugaredLogger) *WeatherService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WeatherService{
		WeatherRepo: repo,
		logger:      logger,
	}
}

// GetWeather fetches current conditions for city and returns the provider body
// unchanged when it parses as JSON and does not carry success=false.
//
// Errors are one of: repository.ErrExternalAPI (transport), *InvalidJSONError,
// or *ProviderError.
func (s *WeatherService) GetWeather(ctx context.Context, city string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := s.WeatherRepo.FetchCurrent(ctx, city)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Warnw("Provider returned non-success status", "city", city, "status", resp.StatusCode)
	}

	var data interface{}
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		s.logger.Errorw("Could not parse provider response", "city", city, "error", err)
		return nil, &InvalidJSONError{Raw: truncateRaw(resp.Body), Err: err}
	}
	if data == nil {
		err := errors.New("provider body is null")
		s.logger.Errorw("Could not parse provider response", "city", city, "error", err)
		return nil, &InvalidJSONError{Raw: truncateRaw(resp.Body), Err: err}
	}

	if obj, ok := data.(map[string]interface{}); ok {
		if success, ok := obj["success"].(bool); ok && !success {
			return nil, &ProviderError{Info: obj["error"]}
		}
	}

	return resp.Body, nil
}
