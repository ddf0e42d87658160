package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/pkg/apperrors"
	"github.com/yigit/college/internal/pkg/dberrors"
	"github.com/yigit/college/internal/pkg/logger"
)

// ErrorStatus maps an application error to its HTTP status code
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInitializationFailed), dberrors.IsUndefinedTable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var detail *dto.ErrorDetail

	status := ErrorStatus(err)
	switch status {
	case http.StatusNotFound:
		detail = dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, publicMessage(err, "Resource not found"))
	case http.StatusBadRequest:
		detail = dto.NewErrorDetail(dto.ErrorCodeValidationFailed, publicMessage(err, "Validation failed"))
	case http.StatusServiceUnavailable:
		detail = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Service unavailable").
			WithSeverity(dto.ErrorSeverityCritical)
	default:
		if errors.Is(err, apperrors.ErrCreateFailed) {
			detail = dto.NewErrorDetail(dto.ErrorCodeCreateFailed, publicMessage(err, "Create failed"))
		} else {
			detail = dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("requestId", c.GetString(RequestIDKey)).
			Msg("Request failed")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

// publicMessage returns the message of the outermost CustomError, which is
// safe to show to clients. Wrapped storage errors are never exposed.
func publicMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
