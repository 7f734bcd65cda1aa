package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// DefaultTimeout bounds the management API routes. The import trigger route
// is wired with its own, much longer timeout.
const DefaultTimeout = 30 * time.Second

// Timeout attaches a deadline to the request context. Handlers are expected
// to propagate the context into the database and source layers; nothing is
// forcibly cancelled here, and no response is written on expiry because the
// handler may already have sent one.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			slog.Warn("request deadline exceeded",
				"request_id", GetRequestID(c),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"timeout", timeout.String(),
				"status", c.Writer.Status(),
			)
		}
	}
}
