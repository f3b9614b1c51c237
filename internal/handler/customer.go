package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/repository"
	"github.com/iliyamo/car-wash-booking/internal/service"
)

// CustomerHandler serves the customer-facing vehicle and booking API.
type CustomerHandler struct {
	Vehicles *repository.VehicleRepo
	Engine   *service.BookingEngine
	Payments *service.PaymentService
}

func NewCustomerHandler(v *repository.VehicleRepo, e *service.BookingEngine, p *service.PaymentService) *CustomerHandler {
	return &CustomerHandler{Vehicles: v, Engine: e, Payments: p}
}

type addVehicleReq struct {
	PlateNo string  `json:"plate_no"`
	Make    *string `json:"make"`
	Model   *string `json:"model"`
	Color   *string `json:"color"`
	Type    *string `json:"type"`
}

type createBookingReq struct {
	VehicleID   uint64  `json:"vehicle_id"`
	PackageID   uint64  `json:"package_id"`
	ScheduledAt *string `json:"scheduled_at"`
	Notes       *string `json:"notes"`
}

// AddVehicle registers a vehicle under the current customer.
func (h *CustomerHandler) AddVehicle(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req addVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.PlateNo = strings.ToUpper(strings.TrimSpace(req.PlateNo))
	if req.PlateNo == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "plate_no required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	v := &model.Vehicle{
		CustomerID: uid,
		PlateNo:    req.PlateNo,
		Make:       req.Make,
		Model:      req.Model,
		Color:      req.Color,
		Type:       req.Type,
	}
	if err := h.Vehicles.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "plate already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create vehicle failed"})
	}
	return c.JSON(http.StatusCreated, v)
}

// ListVehicles returns the current customer's vehicles.
func (h *CustomerHandler) ListVehicles(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	vehicles, err := h.Vehicles.ListByCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, vehicles)
}

// CreateBooking opens a booking for one of the customer's vehicles.
func (h *CustomerHandler) CreateBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.VehicleID == 0 || req.PackageID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id/package_id required"})
	}
	var scheduledAt *time.Time
	if req.ScheduledAt != nil && strings.TrimSpace(*req.ScheduledAt) != "" {
		t, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.ScheduledAt))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled_at must be RFC3339"})
		}
		utc := t.UTC()
		scheduledAt = &utc
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	b, err := h.Engine.Create(ctx, service.CreateInput{
		CustomerID:  uid,
		VehicleID:   req.VehicleID,
		PackageID:   req.PackageID,
		ScheduledAt: scheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

// MyBookings lists the current customer's bookings, newest first.
func (h *CustomerHandler) MyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Engine.ListForCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GetBooking returns one booking with its payment, scoped to the owner.
func (h *CustomerHandler) GetBooking(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Engine.GetForCustomer(ctx, id, uid)
	if err != nil {
		return respondError(c, err)
	}
	pay, err := h.Payments.Get(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"booking": d, "payment": pay})
}

// BookingHistory returns the stage timeline of one of the customer's
// bookings.
func (h *CustomerHandler) BookingHistory(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Ownership check first so other customers' timelines stay hidden.
	if _, err := h.Engine.GetForCustomer(ctx, id, uid); err != nil {
		return respondError(c, err)
	}
	rows, err := h.Engine.History(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
