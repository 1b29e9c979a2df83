package server

import (
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"
)

// ErrorCode is a machine readable error class.
type ErrorCode string

const (
	// ErrCodeInvalidRequest marks a body that is not the
	// expected JSON.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeValidationFailed marks well-formed JSON missing
	// a required field.
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// ErrCodeTooLarge marks input above the configured limit.
	ErrCodeTooLarge ErrorCode = "too_large"

	// ErrCodeInternalError marks a failure on our side.
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError is the body of every error response.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse wraps an APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("writing response", "error", err)
	}
}

func writeError(
	w http.ResponseWriter,
	status int,
	code ErrorCode,
	msg string,
) {
	writeJSON(w, status, ErrorResponse{
		Error: APIError{Code: code, Message: msg},
	})
}
