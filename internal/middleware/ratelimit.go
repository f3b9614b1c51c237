package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/car-wash-booking/internal/config"
)

// rateLimitKey builds the counter key for one client in one fixed
// window.  The window number is part of the key, so each window counts
// in a fresh key and a counter whose EXPIRE never landed can only
// throttle until the window rolls over.
func rateLimitKey(prefix, ip string, now time.Time, window time.Duration) string {
	n := now.Unix() / int64(window/time.Second)
	return fmt.Sprintf("%s:%s:%d", prefix, ip, n)
}

// RateLimit enforces a fixed-window per-client request cap backed by
// Redis.  When Redis is unavailable the middleware lets requests
// through rather than taking the API down.
func RateLimit(rdb *redis.Client, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Enabled || rdb == nil {
				return next(c)
			}
			ctx := c.Request().Context()
			key := rateLimitKey(cfg.Prefix, c.RealIP(), time.Now(), cfg.Window)
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				rdb.Expire(ctx, key, cfg.Window)
			}
			if n > int64(cfg.Limit) {
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
