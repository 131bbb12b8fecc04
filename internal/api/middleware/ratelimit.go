package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// RateLimit enforces a fixed-window request quota per client IP, shared
// across instances through Redis. Key format: ratelimit:<ip>:<window_index>.
// When Redis is unreachable the limiter fails open; availability of the API
// wins over strictness of the quota.
func RateLimit(client *redis.Client, limit int64, window time.Duration) echo.MiddlewareFunc {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			bucket := time.Now().Unix() / int64(window.Seconds())
			key := fmt.Sprintf("ratelimit:%s:%d", c.RealIP(), bucket)

			n, err := client.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				client.Expire(ctx, key, window)
			}
			if n > limit {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"too many requests from this IP, please try again later")
			}
			return next(c)
		}
	}
}
