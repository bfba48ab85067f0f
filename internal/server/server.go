package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-lookup/internal/config"
	"github.com/fakhrymubarak/weather-lookup/internal/handler"
	"github.com/fakhrymubarak/weather-lookup/internal/middleware"
	"github.com/fakhrymubarak/weather-lookup/internal/service"
	"github.com/fakhrymubarak/weather-lookup/internal/view"
)

// Dependencies are the components the router is assembled from.
type Dependencies struct {
	WeatherService service.WeatherServiceInterface
	PageFetcher    view.WeatherFetcher
	Logger         *zap.SugaredLogger
}

// NewRouter wires the page, the proxy endpoint and the health check.
func NewRouter(deps Dependencies) *mux.Router {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/weather", handler.NewWeatherHandler(deps.WeatherService, logger).HandleWeather)
	router.HandleFunc("/healthz", handler.HandleHealth).Methods(http.MethodGet)
	router.HandleFunc("/", handler.NewPageHandler(deps.PageFetcher, logger).HandlePage)
	router.NotFoundHandler = http.HandlerFunc(handler.HandleNotFound)

	router.Use(middleware.RequestID, middleware.Recover(logger), middleware.Logging(logger))
	return router
}

// NewHTTPServer returns a server for addr with timeouts taken from config.
func NewHTTPServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: config.GetServerTimeout("read_header_timeout"),
		ReadTimeout:       config.GetServerTimeout("read_timeout"),
		WriteTimeout:      config.GetServerTimeout("write_timeout"),
		IdleTimeout:       config.GetServerTimeout("idle_timeout"),
	}
}

// Run serves srv on ln until ctx is done, then shuts down gracefully within
// shutdownTimeout. A nil ln makes Run listen on srv.Addr.
func Run(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger *zap.SugaredLogger) error {
	if ln == nil {
		var err error
		ln, err = net.Listen("tcp", srv.Addr)
		if err != nil {
			return err
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Infow("Weather lookup server running", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Infow("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Infow("Server stopped")
	return nil
}
