// Package middleware holds the gin middleware shared by every route.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger writes one entry per request once the handler chain has run.
// 5xx responses are logged at error level and 4xx at warn.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		fields := []any{
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
		}
		fields = appendIf(fields, "request_id", GetRequestID(c))
		fields = appendIf(fields, "route", c.FullPath())
		fields = appendIf(fields, "query", query)
		if size := c.Writer.Size(); size > 0 {
			fields = append(fields, "size", size)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		log := logger.Infow
		switch {
		case status >= 500:
			log = logger.Errorw
		case status >= 400:
			log = logger.Warnw
		}
		log("HTTP request", fields...)
	}
}

func appendIf(fields []any, key, value string) []any {
	if value == "" {
		return fields
	}
	return append(fields, key, value)
}
