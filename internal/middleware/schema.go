package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/college/internal/app/models/dto"
	"github.com/yigit/college/internal/pkg/logger"
)

// SchemaInitializer is satisfied by *migrations.Schema
type SchemaInitializer interface {
	Initialize(ctx context.Context) error
	Ready() bool
}

// RequireSchema retries schema initialization for data routes until it succeeds.
// While storage is unavailable, requests are answered with 503.
func RequireSchema(schema SchemaInitializer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if schema.Ready() {
			c.Next()
			return
		}

		if err := schema.Initialize(c.Request.Context()); err != nil {
			logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Storage is not initialized")

			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Service unavailable").
					WithSeverity(dto.ErrorSeverityCritical)
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
				return
			}
			c.String(http.StatusServiceUnavailable, "Service unavailable")
			c.Abort()
			return
		}

		logger.Info().Msg("Storage initialized on retry")
		c.Next()
	}
}
