package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-hero/pkg/log"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestID stamps every request with an id, reusing the caller's when present,
// and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.ContextWithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
