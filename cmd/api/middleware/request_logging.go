package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"maternal-chat/cmd/api/trace"
	"maternal-chat/internal/logger"
)

// RequestLogging 은 요청 진입부터 응답까지 걸린 시간을 구조화 필드로 로깅한다.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.InfoWithFields("completed request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
			"request_id":  trace.RequestIDFromContext(c.Request.Context()),
		})
	}
}
