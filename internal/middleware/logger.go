package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medhq/hms-api/pkg/logger"
)

// Logger logs one line per request once the handler chain completes.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		entry := log.WithFields(map[string]interface{}{
			"request_id": RequestIDFrom(c),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.Last(), "request failed")
			return
		}
		entry.Info("request completed")
	}
}
