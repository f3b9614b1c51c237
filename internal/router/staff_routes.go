package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/handler"
	"github.com/iliyamo/car-wash-booking/internal/middleware"
	"github.com/iliyamo/car-wash-booking/internal/model"
)

// RegisterStaff wires the wash-floor endpoints.  Admins can do
// everything staff can.
func RegisterStaff(e *echo.Echo, h *handler.StaffHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleStaff, model.RoleAdmin),
	)
	g.GET("/bookings/active", h.ActiveBookings)
	g.POST("/bookings/:id/stage", h.AdvanceStage)
	g.GET("/bookings/:id/history", h.History)
	g.GET("/bookings/:id/payment", h.GetPayment)
	g.PUT("/bookings/:id/payment", h.UpdatePayment)
	g.POST("/bookings/:id/assignments", h.Assign)
	g.GET("/bookings/:id/assignments", h.ListAssignments)
}
