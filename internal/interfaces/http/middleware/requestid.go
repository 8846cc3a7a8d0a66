package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"classicmodels/internal/shared/constants"
)

const maxRequestIDLength = 64

// RequestID propagates an incoming X-Request-ID or assigns a fresh UUID,
// echoing it back on the response and storing it on the gin context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(constants.ContextKeyRequestID)
}
