package logger

import (
	"PayPalCheckout/pkg/correlation"

	"github.com/gin-gonic/gin"
)

// CorrelationMiddleware takes X-Correlation-ID from the request or generates one,
// stores it in the request context and echoes it in the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := correlation.FromHeader(c.GetHeader(correlation.HeaderName))

		c.Request = c.Request.WithContext(correlation.WithID(c.Request.Context(), corrID))
		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}
