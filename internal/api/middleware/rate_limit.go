package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"faculty-schedule/backend/pkg/redis"
	"faculty-schedule/backend/pkg/response"
)

// RateLimit — redis sliding-window limiter keyed on client IP and route.
// limit requests per window. A nil or failing redis degrades to
// pass-through, same as the blacklist check in JWTAuth.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10011, "Trop de requêtes, veuillez réessayer plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}
