package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sweet-shop/backend/internal/models"
)

// Response is the envelope every endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

// writeJSON writes a response envelope
func writeJSON(w http.ResponseWriter, status int, resp Response, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// writeData writes a successful envelope carrying a data payload
func writeData(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	writeJSON(w, status, Response{Success: true, Data: data}, logger)
}

// writeList writes a successful envelope carrying a list and its count
func writeList(w http.ResponseWriter, sweets []models.Sweet, logger *slog.Logger) {
	count := len(sweets)
	writeJSON(w, http.StatusOK, Response{Success: true, Data: sweets, Count: &count}, logger)
}

// writeError writes a failure envelope
func writeError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, Response{Success: false, Message: message}, logger)
}

// errorStatus maps a service error to an HTTP status and a client-safe
// message. Unexpected errors surface only a generic message; callers log
// the detail themselves.
func errorStatus(err error) (int, string) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}
	if models.IsInvalidIdentifier(err) {
		return http.StatusBadRequest, "Invalid sweet ID"
	}
	if models.IsNotFound(err) {
		return http.StatusNotFound, "Sweet not found"
	}
	if models.IsInsufficientStock(err) {
		return http.StatusBadRequest, "Insufficient stock or invalid quantity"
	}
	if models.IsInvalidQuantity(err) {
		return http.StatusBadRequest, "Please provide a valid restock quantity"
	}
	if models.IsDuplicate(err) {
		return http.StatusBadRequest, "A sweet with this name already exists"
	}
	return http.StatusInternalServerError, "Internal server error"
}

// isUnexpected reports whether the error falls outside the known taxonomy
// and should be logged at error level with full detail
func isUnexpected(err error) bool {
	status, _ := errorStatus(err)
	return status == http.StatusInternalServerError
}
