package middleware

import (
	"strconv"
	"time"

	"calldesk-booking/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware tracks HTTP request metrics.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// unmatched paths share one label to keep cardinality bounded
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		m.RequestDuration.WithLabelValues(c.Request.Method, endpoint, statusCode).
			Observe(time.Since(start).Seconds())
		m.RequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusCode).Inc()
	}
}
