// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/terrazul/terrazul-backend/internal/config"
)

func setupLimitedRouter(limiter gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(limiter)
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/v1/cart", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doLimitedRequest(r *gin.Engine, path, remoteAddr string) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiterBlocksAfterBurst(t *testing.T) {
	// Tiny refill rate so the burst is all a visitor gets inside the test
	r := setupLimitedRouter(NewRateLimiter(rate.Every(time.Hour), 2).Middleware())

	assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))
}

func TestRateLimiterIsPerIP(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(rate.Every(time.Hour), 1).Middleware())

	assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))

	// A second visitor has its own bucket
	assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/v1/cart", "10.0.0.2:1234"))
}

func TestRateLimiterSkipsHealth(t *testing.T) {
	r := setupLimitedRouter(NewRateLimiter(rate.Every(time.Hour), 1).Middleware())

	// Exhaust the visitor's budget
	assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))

	// Health probes pass regardless
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/health", "10.0.0.1:1234"))
	}
}

func TestRateLimitersFromConfig(t *testing.T) {
	cfg := config.RateLimitConfig{
		GeneralPerSecond: 20,
		AuthPerMinute:    5,
		UploadPerMinute:  5,
	}

	// Constructors must honor the configured sizes without panicking
	assert.NotNil(t, GeneralRateLimit(cfg))
	assert.NotNil(t, AuthRateLimit(cfg))
	assert.NotNil(t, UploadRateLimit(cfg))

	r := setupLimitedRouter(GeneralRateLimit(cfg))
	assert.Equal(t, http.StatusOK, doLimitedRequest(r, "/v1/cart", "10.0.0.1:1234"))
}
