package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CustomRecovery turns a panic into the standard INTERNAL_ERROR envelope.
// It must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"path", c.Request.URL.Path,
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"ok": false,
					"error": gin.H{
						"code":      "INTERNAL_ERROR",
						"message":   "Internal error",
						"timestamp": time.Now().UTC(),
					},
				})
			}
		}()
		c.Next()
	}
}
