package middleware

import (
	"fmt"
	"net/http"
	"time"

	"garcolderp/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window per-IP limiter backed by redis, so the limit
// holds across replicas. If redis is unreachable the request is let through:
// the limiter protects capacity, it must not become an outage of its own.
func RateLimiter(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return limiterWithPrefix(rdb, "ratelimit:api", limit, window,
		"Demasiadas solicitudes. Intente nuevamente en un momento.")
}

// LoginRateLimiter applies a much tighter window to login attempts.
func LoginRateLimiter(rdb *redis.Client) gin.HandlerFunc {
	return limiterWithPrefix(rdb, "ratelimit:login", 20, time.Minute,
		"Demasiados intentos de login. Intente en 1 minuto.")
}

func limiterWithPrefix(rdb *redis.Client, prefix string, limit int, window time.Duration, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", prefix, c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}
