package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/handler"
	"github.com/iliyamo/car-wash-booking/internal/middleware"
	"github.com/iliyamo/car-wash-booking/internal/model"
)

// RegisterCustomer wires the customer-scoped endpoints under /v1.
// Every route requires a valid JWT with the Customer role; handlers
// additionally scope queries to the authenticated customer.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer),
	)
	g.POST("/vehicles", h.AddVehicle)
	g.GET("/vehicles", h.ListVehicles)
	g.POST("/bookings", h.CreateBooking)
	g.GET("/my-bookings", h.MyBookings)
	g.GET("/bookings/:id", h.GetBooking)
	g.GET("/my-bookings/:id/history", h.BookingHistory)
}
