// SPDX-License-Identifier: MIT
// Package: tourbound/stream
//
// middleware.go — request identity and structured request logging.
//
// Every request gets an X-Request-ID (a client-supplied one wins) so a log
// line, a response, and a support ticket can name the same request.

package stream

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader carries the request id on both request and response.
const requestIDHeader = "X-Request-ID"

// requestIDKey stores the request id in the gin context.
const requestIDKey = "request_id"

// RequestLogger returns gin middleware that assigns the request id and
// emits one structured line per completed request.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set(requestIDKey, id)

		c.Next()

		log.Info("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

// requestID returns the id minted by RequestLogger, or "" when the
// middleware did not run.
func requestID(c *gin.Context) string {
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
