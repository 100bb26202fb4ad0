package middleware

import (
	"github.com/gin-gonic/gin"

	"echonote/pkg/response"

	"golang.org/x/time/rate"
)

// RateLimit throttles extraction traffic per user. Limiters live in an LRU
// cache keyed by user id so the set of tracked users stays bounded.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.ratePerMin <= 0 {
			c.Next()
			return
		}

		key := GetScope(c).UserID
		if key == "" {
			key = c.ClientIP()
		}

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(float64(m.ratePerMin)/60.0), m.ratePerMin)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled user=%s", key)
			response.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
