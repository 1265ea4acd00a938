package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barbapp/booking-api/internal/metrics"
)

func HTTPMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			// unmatched request, keep label cardinality bounded
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.RequestsTotal.
			WithLabelValues(route, c.Request.Method, status).
			Inc()
		metrics.RequestLatency.
			WithLabelValues(route, c.Request.Method, status).
			Observe(time.Since(start).Seconds())
	}
}
