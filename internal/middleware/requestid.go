package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notes-client/pkg/log"
	"notes-client/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an id, reusing the caller's when present,
// and puts it on the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Recovery turns panics into a 500 response.
func (m Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic: %v", rec)
		response.InternalError(c)
	})
}
