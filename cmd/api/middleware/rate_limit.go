package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"maternal-chat/cmd/api/dto"
)

type clientWindow struct {
	windowStart time.Time
	count       int
}

// RateLimit enforces a fixed quota of requests per client address within a
// one-minute window. In-memory counters, reset on restart; a single
// instance is assumed. limit <= 0 disables the middleware.
func RateLimit(limit int) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*clientWindow)

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		w := clients[ip]
		if w == nil || now.Sub(w.windowStart) >= time.Minute {
			w = &clientWindow{windowStart: now}
			clients[ip] = w
		}
		w.count++
		exceeded := w.count > limit
		mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponseDTO{Error: "rate_limit_exceeded"})
			return
		}

		c.Next()
	}
}
