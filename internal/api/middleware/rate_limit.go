package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"student-api/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RateLimiter is the sliding window check backing RateLimitIP.
type RateLimiter interface {
	CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type RateLimitMiddleware struct {
	limiter RateLimiter
	log     *zap.Logger
}

func NewRateLimitMiddleware(limiter RateLimiter, log *zap.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, log: log.Named("ratelimit")}
}

// RateLimitIP limits requests per client IP and path. Limiter errors let the request through.
func (rm *RateLimitMiddleware) RateLimitIP(requests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit_ip:%s:%s", c.ClientIP(), c.Request.URL.Path)

		allowed, err := rm.limiter.CheckRateLimit(c.Request.Context(), key, requests, window)
		if err != nil {
			rm.log.Warn("Rate limit check failed", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   response.MsgRateLimitExceeded,
				"details": fmt.Sprintf("Too many requests. Limit: %d per %v", requests, window),
			})
			return
		}

		c.Next()
	}
}
