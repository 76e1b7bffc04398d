package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pixelperfect/backend/pkg/apperror"
	"github.com/pixelperfect/backend/pkg/logger"
)

// ErrorMiddleware converts errors attached via c.Error into structured
// responses. Handlers that own an exact body contract respond directly and
// never reach this path.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= 500 {
				log.Error("Request failed", appErr, zap.String("path", c.Request.URL.Path))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err, zap.String("path", c.Request.URL.Path))
		c.JSON(apperror.ToHTTPStatus(err), gin.H{"error": "internal server error"})
	}
}
