package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/api"
)

// Recovery is the outermost error boundary. It turns any panic into a
// uniform 500 envelope with a generic message; the cause is logged
// server-side and never leaked to the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic recovered",
					"error", r,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(ContextRequestID),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					api.ErrorResponse{Message: "Internal server error"})
			}
		}()
		c.Next()
	}
}
