package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates how a booking is paid.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "Cash"
	MethodCard   PaymentMethod = "Card"
	MethodOnline PaymentMethod = "Online"
)

// ParsePaymentMethod validates s against the known methods.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case MethodCash, MethodCard, MethodOnline:
		return PaymentMethod(s), nil
	default:
		return "", fmt.Errorf("unknown payment method: %s", s)
	}
}

// PaymentStatus enumerates the bookkeeping state of a payment.
type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "Unpaid"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentPartial  PaymentStatus = "Partial"
	PaymentRefunded PaymentStatus = "Refunded"
)

// ParsePaymentStatus validates s against the known statuses.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentPaid, PaymentPartial, PaymentRefunded:
		return PaymentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown payment status: %s", s)
	}
}

// Payment is the single payment row attached 1:1 to a booking
// (`payments` table).  It is created automatically when the booking is
// created, with the package price as amount, Cash method and Unpaid
// status.  Thereafter it changes only by explicit staff action; the
// lifecycle engine never marks it Paid on completion.
//
// PaidAt is set when status becomes Paid and cleared whenever the
// status moves to anything else.
type Payment struct {
	ID        uint64          `json:"id"`         // payments.id
	BookingID uint64          `json:"booking_id"` // payments.booking_id (unique)
	Amount    decimal.Decimal `json:"amount"`     // payments.amount
	Method    PaymentMethod   `json:"method"`     // payments.method
	Status    PaymentStatus   `json:"status"`     // payments.payment_status
	PaidAt    *time.Time      `json:"paid_at"`    // payments.paid_at (nullable)
}
