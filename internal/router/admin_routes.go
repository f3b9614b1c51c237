package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/handler"
	"github.com/iliyamo/car-wash-booking/internal/middleware"
	"github.com/iliyamo/car-wash-booking/internal/model"
)

// RegisterAdmin wires catalog management and account provisioning.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	g.POST("/stages", h.CreateStage)
	g.POST("/packages", h.CreatePackage)
	g.PATCH("/packages/:id", h.UpdatePackage)
	g.POST("/users", h.CreateUser)
}
