// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/idgen/internal/errors"
)

// ErrorResponse is the body of every non-2xx API response. Error is a stable code.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HandleErrorGin maps an error kind to its HTTP status and writes the JSON error body.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	code := apperrors.Code(err)
	errorResponse := ErrorResponse{Error: code}

	// Only caller mistakes expose the wrapped message
	var statusCode int
	switch code {
	case apperrors.CodeNotFound:
		statusCode = http.StatusNotFound
		errorResponse.Message = "The requested resource was not found"
	case apperrors.CodeInvalidInput:
		statusCode = http.StatusUnprocessableEntity
		errorResponse.Message = err.Error()
	case apperrors.CodeUnavailable:
		statusCode = http.StatusServiceUnavailable
		errorResponse.Message = "The service is temporarily unavailable"
	default:
		statusCode = http.StatusInternalServerError
		errorResponse.Message = "An internal error occurred"
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", errorResponse.Error),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, errorResponse)
}

// HandleBadRequestGin writes a 400 for a body or query that could not be parsed.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusBadRequest, "bad_request", err, logger)
}

// HandleValidationErrorGin writes a 422 for a parsed request whose fields are invalid.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusUnprocessableEntity, "validation_error", err, logger)
}

func writeClientError(c *gin.Context, status int, code string, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("rejected request",
			slog.String("error_code", code),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
	}
	c.JSON(status, ErrorResponse{Error: code, Message: err.Error()})
}
