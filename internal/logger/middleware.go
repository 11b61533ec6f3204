package logger

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// logs one line per request and stores a request-scoped logger in the request context
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		reqLogger := defaultLogger.With("method", c.Request.Method, "path", path)
		c.Request = c.Request.WithContext(WithContext(c.Request.Context(), reqLogger))

		c.Next()

		level := slog.LevelInfo
		status := c.Writer.Status()

		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		reqLogger.Log(c.Request.Context(), level, "request completed",
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"user_id", c.GetString("user_id"),
		)
	}
}
