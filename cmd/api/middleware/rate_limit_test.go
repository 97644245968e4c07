package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(limit int, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/send", RateLimit(limit), func(c *gin.Context) {
		*hits++
		c.Status(http.StatusOK)
	})
	return r
}

func doSend(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(`{"query":"q"}`))
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitRejectsNinthRequest(t *testing.T) {
	var hits int
	r := rateLimitedRouter(8, &hits)

	for i := 1; i <= 8; i++ {
		w := doSend(r, "10.0.0.1:1000")
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}

	w := doSend(r, "10.0.0.1:1000")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	// the rejected request never reached the handler
	assert.Equal(t, 8, hits)
}

func TestRateLimitIsPerClientAddress(t *testing.T) {
	var hits int
	r := rateLimitedRouter(2, &hits)

	assert.Equal(t, http.StatusOK, doSend(r, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, doSend(r, "10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, doSend(r, "10.0.0.1:1000").Code)

	// a different address has its own window
	assert.Equal(t, http.StatusOK, doSend(r, "10.0.0.2:1000").Code)
}

func TestRateLimitDisabled(t *testing.T) {
	var hits int
	r := rateLimitedRouter(0, &hits)

	for i := 0; i < 20; i++ {
		assert.Equal(t, http.StatusOK, doSend(r, "10.0.0.1:1000").Code)
	}
	assert.Equal(t, 20, hits)
}
