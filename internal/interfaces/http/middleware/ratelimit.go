package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/ratelimit"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/utils"
)

// RateLimiter limits requests per client IP. A nil limiter disables it.
type RateLimiter struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil {
			c.Next()
			return
		}

		allowed, err := rl.limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			// A Redis outage must not lock users out.
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
