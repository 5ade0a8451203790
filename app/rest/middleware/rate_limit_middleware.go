package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiter applies per-IP limits, stricter on the credential endpoints.
type RateLimiter struct {
	visitors map[string]*visitor
	mutex    sync.RWMutex
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with a background cleanup loop.
func NewRateLimiter() *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
	}

	go rl.cleanupVisitors()
	return rl
}

// RateLimit returns the echo middleware.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			path := c.Request().URL.Path

			var limit rate.Limit
			var burst int
			switch {
			case strings.Contains(path, "/register"):
				limit = rate.Every(10 * time.Second)
				burst = 3
			case strings.Contains(path, "/login"):
				limit = rate.Every(2 * time.Second)
				burst = 5
			default:
				limit = rate.Every(100 * time.Millisecond)
				burst = 20
			}

			if !rl.visitorFor(ip, path, limit, burst).Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "too many requests",
				})
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) visitorFor(ip, path string, limit rate.Limit, burst int) *rate.Limiter {
	key := ip + "|" + bucketFor(path)

	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	v, exists := rl.visitors[key]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(limit, burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func bucketFor(path string) string {
	switch {
	case strings.Contains(path, "/register"):
		return "register"
	case strings.Contains(path, "/login"):
		return "login"
	default:
		return "default"
	}
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mutex.Lock()
		for key, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, key)
			}
		}
		rl.mutex.Unlock()
	}
}
