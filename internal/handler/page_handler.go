package handler

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-lookup/internal/view"
)

// PageHandler serves the search page. GET / shows the idle page; GET /?city=x
// (the form submit) runs one search against the proxy and renders the outcome.
type PageHandler struct {
	fetcher view.WeatherFetcher
	logger  *zap.SugaredLogger
}

func NewPageHandler(fetcher view.WeatherFetcher, logger *zap.SugaredLogger) *PageHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &PageHandler{fetcher: fetcher, logger: logger}
}

func (h *PageHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	v := view.New(h.fetcher, h.logger)
	if cities, submitted := r.URL.Query()["city"]; submitted {
		v.SetQuery(cities[0])
		v.SubmitSearch(r.Context())
	}

	var buf bytes.Buffer
	if err := view.Render(&buf, v.State()); err != nil {
		h.logger.Errorw("could not render page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
