package middleware

import (
	"github.com/gin-gonic/gin"

	"maternal-chat/cmd/api/trace"
)

const headerRequestID = "X-Request-Id"

// RequestTrace 는 모든 inbound HTTP 요청에 Request ID를 보장하고
// 컨텍스트와 응답 헤더에 저장한다.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = trace.GenerateID()
		}

		c.Request = c.Request.WithContext(trace.WithRequestID(c.Request.Context(), requestID))
		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}
