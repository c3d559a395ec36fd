package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// RateLimiter allows maxRequests per window per IP, method and route.
// Without a Redis client it lets everything through.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}
		ctx := c.Request.Context()

		key := "rl:" + c.ClientIP() + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			config.Log.Errorw("[rate-limit] redis incr failed", "key", key, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			return
		}

		// First request → set expiry and a stable resetAt
		if count == 1 {
			resetAt := time.Now().Add(window)
			pipe := config.RedisClient.TxPipeline()
			pipe.Expire(ctx, key, window)
			pipe.Set(ctx, resetKey, resetAt.Unix(), window)
			if _, err := pipe.Exec(ctx); err != nil {
				config.Log.Warnw("[rate-limit] failed to set window", "key", key, "error", err)
			}
		}

		resetAtUnix, _ := config.RedisClient.Get(ctx, resetKey).Int64()
		rate := buildRateInfo(maxRequests, count, time.Unix(resetAtUnix, 0), time.Now())
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			return
		}

		c.Next()
	}
}

// buildRateInfo clamps remaining and reset-in at zero.
func buildRateInfo(maxRequests int, count int64, resetAt, now time.Time) *models.RateLimiter {
	remaining := maxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}
	resetIn := int(resetAt.Sub(now).Seconds())
	if resetIn < 0 {
		resetIn = 0
	}
	return &models.RateLimiter{
		Limit:          maxRequests,
		Remaining:      remaining,
		ResetAt:        resetAt,
		ResetInSeconds: resetIn,
	}
}
