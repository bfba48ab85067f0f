package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-lookup/internal/model"
	"github.com/fakhrymubarak/weather-lookup/internal/service"
)

const (
	msgCityRequired     = "City is required"
	msgMethodNotAllowed = "Method not allowed"
	msgInvalidJSON      = "Invalid JSON response from Weatherstack"
	msgProviderError    = "Weatherstack error"
	msgServerError      = "Server error"
)

type WeatherHandler struct {
	WeatherService service.WeatherServiceInterface
	logger         *zap.SugaredLogger
}

func NewWeatherHandler(svc service.WeatherServiceInterface, logger *zap.SugaredLogger) *WeatherHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &WeatherHandler{
		WeatherService: svc,
		logger:         logger,
	}
}

func writeJSONResponse(w http.ResponseWriter, logger *zap.SugaredLogger, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Errorw("could not encode json", "error", err)
	}
}

// HandleWeather serves GET /api/weather?city=<name>.
func (h *WeatherHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSONResponse(w, h.logger, http.StatusMethodNotAllowed, model.ErrorResponse{Error: msgMethodNotAllowed})
		return
	}

	// A repeated city parameter is not a plain string and is rejected like a missing one.
	cities := r.URL.Query()["city"]
	if len(cities) != 1 || cities[0] == "" {
		writeJSONResponse(w, h.logger, http.StatusBadRequest, model.ErrorResponse{Error: msgCityRequired})
		return
	}
	city := cities[0]

	body, err := h.WeatherService.GetWeather(r.Context(), city)
	if err != nil {
		h.writeServiceError(w, city, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Errorw("could not write response", "city", city, "error", err)
	}
}

func (h *WeatherHandler) writeServiceError(w http.ResponseWriter, city string, err error) {
	var (
		jsonErr     *service.InvalidJSONError
		providerErr *service.ProviderError
	)
	switch {
	case errors.As(err, &jsonErr):
		raw := jsonErr.Raw
		writeJSONResponse(w, h.logger, http.StatusInternalServerError, model.ErrorResponse{
			Error: msgInvalidJSON,
			Raw:   &raw,
		})
	case errors.As(err, &providerErr):
		h.logger.Infow("Provider rejected request", "city", city, "info", providerErr.Info)
		writeJSONResponse(w, h.logger, http.StatusInternalServerError, model.ErrorResponse{
			Error: msgProviderError,
			Info:  providerErr.Info,
		})
	default:
		h.logger.Errorw("Failed to fetch weather data", "city", city, "error", err)
		writeJSONResponse(w, h.logger, http.StatusInternalServerError, model.ErrorResponse{
			Error:   msgServerError,
			Message: err.Error(),
		})
	}
}
