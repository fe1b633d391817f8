package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobbuddy/backend/internal/delivery/http/response"
	"github.com/jobbuddy/backend/pkg/apperror"
	"github.com/jobbuddy/backend/pkg/logger"
)

// ErrorHandler translates errors attached to the gin context into the JSON
// envelope. Unknown errors are logged server-side and masked with a generic
// message so internals never leak to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed", "code", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unexpected error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
