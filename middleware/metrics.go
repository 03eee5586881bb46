package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cropguard-service/metrics"
)

// MetricsMiddleware records request duration per route and status code.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDurationSeconds.
			WithLabelValues(route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
