// internal/middleware/rate_limit.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/terrazul/terrazul-backend/internal/config"
)

const visitorStaleAfter = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles per client IP. One instance exists per route class
// (general/auth/upload); each keeps its own visitor table.
type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	go rl.evictStaleVisitors()

	return rl
}

func (rl *RateLimiter) evictStaleVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorStaleAfter {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Health probes hit on a schedule and must never be throttled
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// atLeastOne keeps a misconfigured zero from disabling a limiter entirely.
func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// GeneralRateLimit covers the whole API; the burst matches the storefront's
// browse pattern of a catalog page plus cart fetch landing together.
func GeneralRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	perSecond := atLeastOne(cfg.GeneralPerSecond)
	return NewRateLimiter(rate.Limit(perSecond), 2*perSecond).Middleware()
}

// AuthRateLimit slows credential guessing against the admin login.
func AuthRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	perMinute := atLeastOne(cfg.AuthPerMinute)
	return NewRateLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute).Middleware()
}

// UploadRateLimit throttles admin image uploads, a cold path here.
func UploadRateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	perMinute := atLeastOne(cfg.UploadPerMinute)
	return NewRateLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute).Middleware()
}
