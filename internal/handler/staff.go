package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/service"
)

// StaffHandler serves the wash-floor API: the work queue, stage
// advancement, payments and staff assignment.
type StaffHandler struct {
	Engine      *service.BookingEngine
	Payments    *service.PaymentService
	Assignments *service.AssignmentService
}

func NewStaffHandler(e *service.BookingEngine, p *service.PaymentService, a *service.AssignmentService) *StaffHandler {
	return &StaffHandler{Engine: e, Payments: p, Assignments: a}
}

type advanceReq struct {
	StageID       uint64 `json:"stage_id"`
	ClosePrevious bool   `json:"close_previous"`
}

type paymentReq struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

type assignReq struct {
	StaffID uint64 `json:"staff_id"`
}

// ActiveBookings returns every booking still in the pipeline.
func (h *StaffHandler) ActiveBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Engine.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, rows)
}

// AdvanceStage moves a booking to the requested stage.
func (h *StaffHandler) AdvanceStage(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req advanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StageID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stage_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	b, err := h.Engine.AdvanceStage(ctx, service.AdvanceInput{
		BookingID:     id,
		StageID:       req.StageID,
		StaffID:       uid,
		ClosePrevious: req.ClosePrevious,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// History returns a booking's stage timeline.
func (h *StaffHandler) History(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Engine.History(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GetPayment returns a booking's payment row.
func (h *StaffHandler) GetPayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Payments.Get(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// UpdatePayment records how and whether a booking was paid.
func (h *StaffHandler) UpdatePayment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Payments.Update(ctx, id, req.Method, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Assign links a staff member to a booking.
func (h *StaffHandler) Assign(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req assignReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.StaffID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "staff_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Assignments.Assign(ctx, id, req.StaffID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAssignments returns the staff working a booking.
func (h *StaffHandler) ListAssignments(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.Assignments.ListAssigned(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
