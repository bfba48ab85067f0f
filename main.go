package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fakhrymubarak/weather-lookup/internal/config"
	"github.com/fakhrymubarak/weather-lookup/internal/repository"
	"github.com/fakhrymubarak/weather-lookup/internal/server"
	"github.com/fakhrymubarak/weather-lookup/internal/service"
	"github.com/fakhrymubarak/weather-lookup/internal/view"
)

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	srv := server.NewHTTPServer(":"+config.GetServerPort(), server.NewRouter(newDependencies()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, srv, nil, config.GetServerTimeout("shutdown_timeout"), logger); err != nil {
		logger.Fatalw("Server error", "error", err)
	}
}

func newDependencies() server.Dependencies {
	logger := config.GetLogger()
	repo := repository.NewWeatherRepository(config.GetWeatherstackAPIURL(), config.GetWeatherstackAPIKey())
	return server.Dependencies{
		WeatherService: service.NewWeatherService(repo, logger),
		PageFetcher:    view.NewClient(config.GetViewAPIBaseURL()),
		Logger:         logger,
	}
}
