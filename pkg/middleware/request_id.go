package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"
	ContextRequestID = "request_id"
)

// RequestID accepts a UUID X-Request-ID from the client or assigns a new one,
// stores it on the context and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := ""
		if id, err := uuid.Parse(c.GetHeader(HeaderXRequestID)); err == nil {
			rid = id.String()
		} else {
			rid = uuid.NewString()
		}

		c.Set(ContextRequestID, rid)
		c.Header(HeaderXRequestID, rid)
		c.Next()
	}
}
