package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimit caps requests per second per caller, keyed by playerId when one
// is present and by client IP otherwise. Without Redis it is a no-op: the
// memory-backed deployment is single-process and local.
func RateLimit(rdb *redis.Client, maxRequests int) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		key := "ratelimit:" + c.Query("playerId")
		if c.Query("playerId") == "" {
			key = "ratelimit:" + c.ClientIP()
		}
		ctx := c.Request.Context()
		count, _ := rdb.Get(ctx, key).Int()
		if count >= maxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests"})
			c.Abort()
			return
		}
		rdb.Incr(ctx, key)
		rdb.Expire(ctx, key, time.Second)
		c.Next()
	}
}
