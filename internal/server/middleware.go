package server

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// recovery turns handler panics into 500 responses with a logged stack.
func (s *implServer) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error(c.Request.Context(), "Panic recovered on %s %s: %v\n%s",
					c.Request.Method, c.Request.URL.Path, err, debug.Stack())
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}

// requestID injects a unique X-Request-Id header into every
// request/response.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// requestLogger logs every request with method, path, status and
// duration. The health endpoint is silently skipped.
func (s *implServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		s.logger.Info(c.Request.Context(), "%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// bodyLimit caps the request body at the configured upload limit before
// the multipart parser buffers it.
func (s *implServer) bodyLimit() gin.HandlerFunc {
	maxBytes := int64(s.cfg.Server.MaxUploadMB) << 20
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
