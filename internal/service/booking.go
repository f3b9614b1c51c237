package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/repository"
)

// BookingEngine drives the booking lifecycle: creation, stage
// advancement and the read views built on top of them.  All writes
// that touch more than one table run inside a single transaction.
type BookingEngine struct {
	db       *sql.DB
	bookings *repository.BookingRepo
	history  *repository.HistoryRepo
	payments *repository.PaymentRepo
	stages   *repository.StageRepo
	packages *repository.PackageRepo
	vehicles *repository.VehicleRepo
	log      *zap.Logger
}

// NewBookingEngine wires the engine with its repositories.
func NewBookingEngine(db *sql.DB, b *repository.BookingRepo, h *repository.HistoryRepo, p *repository.PaymentRepo, s *repository.StageRepo, pk *repository.PackageRepo, v *repository.VehicleRepo, log *zap.Logger) *BookingEngine {
	return &BookingEngine{db: db, bookings: b, history: h, payments: p, stages: s, packages: pk, vehicles: v, log: log}
}

// CreateInput carries everything needed to open a booking.
type CreateInput struct {
	CustomerID  uint64
	VehicleID   uint64
	PackageID   uint64
	ScheduledAt *time.Time
	Notes       *string
}

// Create opens a booking at the first catalog stage and seeds its
// payment row with the package price, unpaid, cash by default.  The
// booking and the payment commit or roll back together.
func (e *BookingEngine) Create(ctx context.Context, in CreateInput) (*model.Booking, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	owned, err := e.vehicles.OwnedByCustomerTx(ctx, tx, in.VehicleID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, fmt.Errorf("vehicle %d: %w", in.VehicleID, ErrNotFound)
	}

	pkg, err := e.packages.GetTx(ctx, tx, in.PackageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, fmt.Errorf("package %d: %w", in.PackageID, ErrNotFound)
		}
		return nil, err
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("package %d is inactive: %w", in.PackageID, ErrInvalidState)
	}

	first, err := e.stages.FirstTx(ctx, tx)
	if err != nil {
		if errors.Is(err, repository.ErrNoStages) {
			return nil, fmt.Errorf("stage catalog is empty: %w", ErrInvalidState)
		}
		return nil, err
	}

	b := &model.Booking{
		CustomerID:        in.CustomerID,
		VehicleID:         in.VehicleID,
		PackageID:         in.PackageID,
		BookingDatetime:   time.Now().UTC(),
		ScheduledDatetime: in.ScheduledAt,
		Status:            model.StatusBooked,
		CurrentStageID:    &first.ID,
		Notes:             in.Notes,
	}
	if err := e.bookings.CreateTx(ctx, tx, b); err != nil {
		return nil, err
	}

	pay := &model.Payment{
		BookingID: b.ID,
		Amount:    pkg.Price,
		Method:    model.MethodCash,
		Status:    model.PaymentUnpaid,
	}
	if err := e.payments.CreateTx(ctx, tx, pay); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	e.log.Info("booking created",
		zap.Uint64("booking_id", b.ID),
		zap.Uint64("customer_id", in.CustomerID),
		zap.Uint64("package_id", in.PackageID))
	return b, nil
}

// AdvanceInput moves a booking to a target stage.
type AdvanceInput struct {
	BookingID     uint64
	StageID       uint64
	StaffID       uint64
	ClosePrevious bool
}

// AdvanceStage moves a booking to any catalog stage, forward or
// backward.  Entering the highest-ordered stage completes the booking;
// completed and cancelled bookings refuse further moves.  The booking
// row is locked for the duration, so concurrent advances serialize and
// the history ledger keeps at most one open row.
func (e *BookingEngine) AdvanceStage(ctx context.Context, in AdvanceInput) (*model.Booking, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	b, err := e.bookings.GetTx(ctx, tx, in.BookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, fmt.Errorf("booking %d: %w", in.BookingID, ErrNotFound)
		}
		return nil, err
	}
	if b.Status.Terminal() {
		return nil, fmt.Errorf("booking %d is %s: %w", b.ID, b.Status, ErrInvalidTransition)
	}

	order, err := e.stages.OrderTx(ctx, tx, in.StageID)
	if err != nil {
		if errors.Is(err, repository.ErrStageNotFound) {
			return nil, fmt.Errorf("stage %d: %w", in.StageID, ErrNotFound)
		}
		return nil, err
	}
	maxOrder, err := e.stages.MaxOrderTx(ctx, tx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if in.ClosePrevious && b.CurrentStageID != nil {
		if err := e.history.CloseOpenTx(ctx, tx, b.ID, *b.CurrentStageID, now); err != nil {
			return nil, err
		}
	}

	status := statusForOrder(order, maxOrder)
	if err := e.bookings.UpdateStageTx(ctx, tx, b.ID, in.StageID, status); err != nil {
		return nil, err
	}
	if err := e.history.InsertTx(ctx, tx, b.ID, in.StageID, in.StaffID, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	b.CurrentStageID = &in.StageID
	b.Status = status

	e.log.Info("booking stage advanced",
		zap.Uint64("booking_id", b.ID),
		zap.Uint64("stage_id", in.StageID),
		zap.String("status", string(status)),
		zap.Uint64("staff_id", in.StaffID))
	return b, nil
}

// ListActive returns the staff work queue.
func (e *BookingEngine) ListActive(ctx context.Context) ([]repository.ActiveRow, error) {
	return e.bookings.ListActive(ctx)
}

// ListForCustomer returns a customer's own bookings.
func (e *BookingEngine) ListForCustomer(ctx context.Context, customerID uint64) ([]repository.CustomerRow, error) {
	return e.bookings.ListByCustomer(ctx, customerID)
}

// GetForCustomer loads one booking scoped to its owner.
func (e *BookingEngine) GetForCustomer(ctx context.Context, id, customerID uint64) (*repository.Detail, error) {
	d, err := e.bookings.GetDetailForCustomer(ctx, id, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return d, nil
}

// History returns a booking's stage timeline, newest entry first.
func (e *BookingEngine) History(ctx context.Context, bookingID uint64) ([]repository.HistoryRow, error) {
	ok, err := e.bookings.Exists(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}
	return e.history.ListByBooking(ctx, bookingID)
}
