package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GinMetrics instruments requests with Prometheus metrics. The route
// template is used as the path label so ids do not explode cardinality.
func GinMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
