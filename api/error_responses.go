package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Sumandeep-Kaur/Hotel-Hunt/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	ErrorCodeInvalidQuery  ErrorCode = "INVALID_QUERY"
	ErrorCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// APIErrorResponse creates a standardized error response
func APIErrorResponse(code ErrorCode, message string) *APIError {
	return &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// sendError maps an application error to an HTTP response. Validation
// failures become 400s; everything else is a 500.
func sendError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, APIErrorResponse(ErrorCodeInvalidQuery, err.Error()))
		return
	}
	c.JSON(http.StatusInternalServerError, APIErrorResponse(ErrorCodeInternalError, err.Error()))
}
