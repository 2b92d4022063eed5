package middleware

import (
	"net/http"
	"time"

	"parley-chat/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware emits one structured entry per request, carrying the
// request-id and user-id fields from the request context.
func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log == nil {
			return
		}

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}
		if status >= http.StatusInternalServerError {
			log.ErrorCtx(c.Request.Context(), "request failed", fields...)
			return
		}
		log.InfoCtx(c.Request.Context(), "request completed", fields...)
	}
}
