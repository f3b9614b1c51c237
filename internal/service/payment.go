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

// PaymentService manages the per-booking payment ledger.
type PaymentService struct {
	payments *repository.PaymentRepo
	log      *zap.Logger
}

// NewPaymentService wires the service with its repository.
func NewPaymentService(p *repository.PaymentRepo, log *zap.Logger) *PaymentService {
	return &PaymentService{payments: p, log: log}
}

// Update applies a new method and status to a booking's payment.
// paid_at is stamped when the status becomes Paid and cleared on any
// other status, so only a currently Paid payment carries a timestamp.
func (s *PaymentService) Update(ctx context.Context, bookingID uint64, methodStr, statusStr string) (*model.Payment, error) {
	method, err := model.ParsePaymentMethod(methodStr)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}
	status, err := model.ParsePaymentStatus(statusStr)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrValidation)
	}

	p, err := s.payments.GetByBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, fmt.Errorf("payment for booking %d: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}

	var paidAt *time.Time
	if status == model.PaymentPaid {
		now := time.Now().UTC()
		paidAt = &now
	}
	if err := s.payments.Update(ctx, bookingID, method, status, paidAt); err != nil {
		return nil, err
	}

	p.Method = method
	p.Status = status
	p.PaidAt = paidAt

	s.log.Info("payment updated",
		zap.Uint64("booking_id", bookingID),
		zap.String("method", string(method)),
		zap.String("status", string(status)))
	return p, nil
}

// Get returns a booking's payment row.
func (s *PaymentService) Get(ctx context.Context, bookingID uint64) (*model.Payment, error) {
	p, err := s.payments.GetByBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, fmt.Errorf("payment for booking %d: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}
