package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/fakhrymubarak/weather-lookup/internal/model"
)

// HandleHealth reports liveness only; the provider is not contacted.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, zap.NewNop().Sugar(), http.StatusOK, map[string]string{"status": "ok"})
}

// HandleNotFound answers unknown routes with the proxy's JSON error shape.
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, zap.NewNop().Sugar(), http.StatusNotFound, model.ErrorResponse{Error: "Not found"})
}
