package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"chemexplorer/pkg/api"
)

// sendJSON writes data as a JSON response
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes an error response with a detail message
func sendError(logger *slog.Logger, w http.ResponseWriter, detail string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Detail: detail}, statusCode)
}
