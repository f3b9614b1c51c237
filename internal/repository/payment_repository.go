package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

// ErrPaymentNotFound is returned when a booking has no payment row.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepo owns the payments table.  Every booking has exactly one
// payment row, created in the same transaction as the booking itself.
type PaymentRepo struct{ db *sql.DB }

// NewPaymentRepo constructs a PaymentRepo with the given DB handle.
func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{db: db} }

// CreateTx inserts the initial payment row inside an open transaction.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p *model.Payment) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO payments (booking_id, amount, method, payment_status, paid_at) VALUES (?,?,?,?,?)",
		p.BookingID, p.Amount.StringFixed(2), p.Method, p.Status, p.PaidAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	return nil
}

// GetByBooking loads the payment row for a booking.
func (r *PaymentRepo) GetByBooking(ctx context.Context, bookingID uint64) (*model.Payment, error) {
	var p model.Payment
	err := r.db.QueryRowContext(ctx,
		"SELECT id, booking_id, amount, method, payment_status, paid_at FROM payments WHERE booking_id = ?",
		bookingID).Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.Status, &p.PaidAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update overwrites method, status and paid_at for a booking's payment.
// Callers verify existence first; MySQL reports zero affected rows for
// value-identical updates, so the row count is not checked here.
func (r *PaymentRepo) Update(ctx context.Context, bookingID uint64, method model.PaymentMethod, status model.PaymentStatus, paidAt *time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE payments SET method = ?, payment_status = ?, paid_at = ? WHERE booking_id = ?",
		method, status, paidAt, bookingID)
	return err
}
