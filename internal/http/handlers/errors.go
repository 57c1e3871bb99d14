package handlers

import (
	"net/http"

	"flightbooking/internal/domain"
	"flightbooking/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	Details   any    `json:"details,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Details:   details,
		RequestID: middleware.GetRequestID(c),
	})
}

// errorStatus maps domain errors to an HTTP status, a code and a client-safe message.
func errorStatus(err error) (int, string, string) {
	switch {
	case domain.IsValidation(err):
		return http.StatusBadRequest, "validation_error", err.Error()
	case domain.IsConfiguration(err):
		return http.StatusBadRequest, "configuration_error", err.Error()
	case domain.IsNotFound(err):
		return http.StatusNotFound, "not_found", err.Error()
	case domain.IsNetwork(err):
		return http.StatusBadGateway, "network_error", "booking service unreachable"
	case domain.IsMalformedResponse(err):
		return http.StatusBadGateway, "malformed_response", "booking service returned an unexpected response"
	case domain.IsInternal(err):
		return http.StatusInternalServerError, "internal_error", "something went wrong"
	default:
		return http.StatusInternalServerError, "unknown_error", "something went wrong"
	}
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	status, code, msg := errorStatus(err)
	_ = c.Error(err)
	respondError(c, status, code, msg, nil)
}
