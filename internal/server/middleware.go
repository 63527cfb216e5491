package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nguyentantai21042004/video-summarizer/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// requestID tags the request context so pipeline logs can be correlated.
func (s *Server) requestID(c *gin.Context) {
	ctx, id := logger.NewRequestID(c.Request.Context())
	c.Request = c.Request.WithContext(ctx)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (s *Server) metricsMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()

	handler := c.FullPath()
	if handler == "" {
		handler = "unmatched"
	}
	s.metrics.ObserveHTTPRequest(handler, c.Request.Method, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
}
