package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
// Anything unrecognised becomes a 500 without leaking the underlying error.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrGiftNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrUnknownRetailer):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnknownOption),
		errors.Is(err, ErrStepNotMultiSelect),
		errors.Is(err, ErrNoInterestsSelected),
		errors.Is(err, ErrQuizNotInProgress),
		errors.Is(err, ErrEmptyQuery),
		errors.Is(err, ErrInvalidEmail):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotConfigured):
		RespondError(c, http.StatusInternalServerError, "Service not configured")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
