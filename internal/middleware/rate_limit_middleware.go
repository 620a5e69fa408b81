package middleware

import (
	"net/http"
	"sync"
	"time"

	"storefront-catalog/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
}

func (r *visitorRegistry) get(ip string, requests, windowSeconds int) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.visitors[ip]
	if !ok {
		window := time.Duration(windowSeconds) * time.Second
		if window <= 0 {
			window = time.Minute
		}
		limit := rate.Every(window / time.Duration(max(requests, 1)))
		v = &visitor{limiter: rate.NewLimiter(limit, max(requests, 1))}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

func (r *visitorRegistry) cleanup(maxAge time.Duration) {
	for range time.Tick(maxAge) {
		r.mu.Lock()
		for ip, v := range r.visitors {
			if time.Since(v.lastSeen) > maxAge {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}

// RateLimitMiddleware limits request rate per client IP.
func RateLimitMiddleware(cfg *config.Config) gin.HandlerFunc {
	registry := &visitorRegistry{visitors: make(map[string]*visitor)}
	go registry.cleanup(10 * time.Minute)

	return func(c *gin.Context) {
		limiter := registry.get(c.ClientIP(), cfg.RateLimitRequests, cfg.RateLimitWindow)
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
