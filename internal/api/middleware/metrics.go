package middleware

import (
	"time"

	"postl-admin-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
