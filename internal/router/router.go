package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/car-wash-booking/internal/config"
	"github.com/iliyamo/car-wash-booking/internal/handler"
	"github.com/iliyamo/car-wash-booking/internal/middleware"
)

// RegisterRoutes wires the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth wires the session endpoints under /v1/auth plus the
// authenticated /v1/me and logout-all endpoints.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/auth/logout-all", a.LogoutAll)
}

// RegisterPublic wires the guest catalog endpoints.  Both are cheap
// reads that rarely change, so they sit behind the Redis cache and the
// rate limiter.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, rdb *redis.Client, rl config.RateLimitConfig, cc config.CacheConfig) {
	g := e.Group("/v1", middleware.RateLimit(rdb, rl), middleware.CacheGET(rdb, cc))
	g.GET("/stages", p.ListStages)
	g.GET("/packages", p.ListPackages)
}
