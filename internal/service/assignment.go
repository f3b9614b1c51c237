package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/repository"
)

// AssignmentService manages which staff work a booking.
type AssignmentService struct {
	assignments *repository.AssignmentRepo
	bookings    *repository.BookingRepo
	users       *repository.UserRepo
	log         *zap.Logger
}

// NewAssignmentService wires the service with its repositories.
func NewAssignmentService(a *repository.AssignmentRepo, b *repository.BookingRepo, u *repository.UserRepo, log *zap.Logger) *AssignmentService {
	return &AssignmentService{assignments: a, bookings: b, users: u, log: log}
}

// Assign links a staff member to a booking.  Assigning the same pair
// twice is a no-op rather than an error.
func (s *AssignmentService) Assign(ctx context.Context, bookingID, staffID uint64) error {
	ok, err := s.bookings.Exists(ctx, bookingID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}

	u, err := s.users.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return fmt.Errorf("user %d: %w", staffID, ErrNotFound)
		}
		return err
	}
	if u.Role != model.RoleStaff && u.Role != model.RoleAdmin {
		return fmt.Errorf("user %d has role %s: %w", staffID, u.Role, ErrValidation)
	}

	inserted, err := s.assignments.Insert(ctx, bookingID, staffID, time.Now().UTC())
	if err != nil {
		return err
	}
	if inserted {
		s.log.Info("staff assigned",
			zap.Uint64("booking_id", bookingID),
			zap.Uint64("staff_id", staffID))
	}
	return nil
}

// ListAssigned returns the staff working a booking.
func (s *AssignmentService) ListAssigned(ctx context.Context, bookingID uint64) ([]repository.AssignmentRow, error) {
	ok, err := s.bookings.Exists(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}
	return s.assignments.ListByBooking(ctx, bookingID)
}
