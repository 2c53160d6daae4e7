package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TheKalyaniMohite/TableGrapeAgent/cmd/api/trace"
	"github.com/TheKalyaniMohite/TableGrapeAgent/internal/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace guarantees a request id and span sequence for every
// inbound request, stores them in the context and response headers,
// and logs the request once it completes. Inbound records use
// span_id=0; outbound calls made during the request claim 1,2,3...
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		ctxWithTrace := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctxWithTrace)

		currentSpan := trace.CurrentSpanID(ctxWithTrace)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Request.Header.Set(headerSpanID, currentSpan)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		c.Next()

		logger.InfoWithFields("request", logger.Fields{
			"request_id":  requestID,
			"span_id":     currentSpan,
			"method":      req.Method,
			"path":        req.URL.Path,
			"query":       req.URL.RawQuery,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
		})
	}
}
