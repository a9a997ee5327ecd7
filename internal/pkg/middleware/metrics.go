package middleware

import (
	"strconv"
	"time"

	"microblog/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics HTTP 指标采集中间件
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		collector.ObserveHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
