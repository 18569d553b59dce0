// Package middleware provides platform-level gin middleware.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request ID.
const HeaderRequestID = "X-Request-Id"

// ContextRequestID is the gin context key for the request ID.
const ContextRequestID = "requestID"

// RequestID assigns every request an ID for log correlation. A client-supplied
// X-Request-Id is kept; otherwise a new UUID is generated. The ID is echoed in
// the response headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
