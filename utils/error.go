package utils

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports a malformed request. Its message is safe to return to callers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSONError sends a standardized JSON error response.
func JSONError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// RespondError maps err onto the error taxonomy. notFoundMsg is used for ErrNotFound.
// Unexpected errors are logged and answered with a generic 500.
func RespondError(c *gin.Context, err error, notFoundMsg string) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		JSONError(c, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, ErrNotFound):
		if notFoundMsg == "" {
			notFoundMsg = "Not found"
		}
		JSONError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, ErrInvalidCredentials):
		JSONError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized):
		JSONError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, ErrForbidden):
		JSONError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, ErrConflict):
		JSONError(c, http.StatusConflict, conflictMessage(err))
	case errors.Is(err, context.DeadlineExceeded):
		GetLogger().Warn("Request timed out", zap.String("path", c.Request.URL.Path), zap.Error(err))
		JSONError(c, http.StatusGatewayTimeout, "Request timed out")
	default:
		GetLogger().Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		JSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// ConflictError carries a caller-facing reason for a 409.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError builds a ConflictError.
func NewConflictError(reason string) error {
	return &ConflictError{Reason: reason}
}

func conflictMessage(err error) string {
	var cErr *ConflictError
	if errors.As(err, &cErr) {
		return cErr.Reason
	}
	return "Resource already exists"
}
