package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/miatagirl/nhccapp/pkg/metrics"
)

// Metrics 记录请求耗时（按路由模板聚合，避免会话 ID 造成标签爆炸）
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
