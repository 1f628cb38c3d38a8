package utils

import (
	"encoding/json"
	"net/http"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/logger"
)

// WriteJSON writes a JSON response body with the right content type. Encoding
// failures are logged, not surfaced; the status line has already gone out.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		if logger.L != nil {
			logger.L.Error("Error encoding JSON response", "error", err)
		}
	}
}

// SendJSONError is the shared JSON error responder.
func SendJSONError(w http.ResponseWriter, message string, statusCode int) {
	if logger.L != nil {
		logger.L.Warn("Sending JSON error to client", "message", message, "statusCode", statusCode)
	}
	WriteJSON(w, statusCode, map[string]string{"error": message})
}
