package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestID = "requestID"

// RequestID tags every response with an X-Request-Id header so a client
// report can be matched against server-side logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		c.Writer.Header().Set("X-Request-Id", id)
		c.Set(ContextRequestID, id)

		c.Next()
	}
}
