package httpserver

import (
	"io"
	"net/http"
	"time"

	"github.com/dmitrijs2005/authapi/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID reuses an incoming X-Request-ID or mints a uuid, and echoes it
// back on the response.
func (s *HTTPServer) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func (s *HTTPServer) requestLogger(c *gin.Context) logging.Logger {
	return s.logger.With(requestIDKey, c.GetString(requestIDKey))
}

func (s *HTTPServer) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}

		log := s.requestLogger(c)
		if status >= http.StatusInternalServerError {
			log.Error(c.Request.Context(), "request", args...)
		} else {
			log.Info(c.Request.Context(), "request", args...)
		}
	}
}

// recovery turns a handler panic into a generic 500 for that request only.
func (s *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		s.requestLogger(c).Error(c.Request.Context(), "panic recovered", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	})
}
