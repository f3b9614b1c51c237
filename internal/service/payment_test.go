package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"

	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/repository"
)

func newTestPaymentService(t *testing.T) (*PaymentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewPaymentService(repository.NewPaymentRepo(db), zap.NewNop()), mock
}

func paymentColumns() []string {
	return []string{"id", "booking_id", "amount", "method", "payment_status", "paid_at"}
}

func TestUpdatePaymentMarksPaid(t *testing.T) {
	svc, mock := newTestPaymentService(t)

	mock.ExpectQuery("FROM payments WHERE booking_id").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(paymentColumns()).
			AddRow(7, 42, "800.00", "Cash", "Unpaid", nil))
	mock.ExpectExec("UPDATE payments SET").
		WithArgs("Card", "Paid", sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p, err := svc.Update(context.Background(), 42, "Card", "Paid")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.Status != model.PaymentPaid || p.Method != model.MethodCard {
		t.Fatalf("got %s/%s, want Card/Paid", p.Method, p.Status)
	}
	if p.PaidAt == nil {
		t.Fatal("paid_at not set for Paid status")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdatePaymentClearsPaidAt(t *testing.T) {
	svc, mock := newTestPaymentService(t)

	mock.ExpectQuery("FROM payments WHERE booking_id").
		WillReturnRows(sqlmock.NewRows(paymentColumns()).
			AddRow(7, 42, "800.00", "Card", "Paid", nil))
	mock.ExpectExec("UPDATE payments SET").
		WithArgs("Card", "Refunded", nil, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	p, err := svc.Update(context.Background(), 42, "Card", "Refunded")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p.PaidAt != nil {
		t.Fatalf("paid_at = %v, want nil after leaving Paid", p.PaidAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUpdatePaymentRejectsUnknownMethod(t *testing.T) {
	svc, _ := newTestPaymentService(t)

	_, err := svc.Update(context.Background(), 42, "Barter", "Paid")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestUpdatePaymentRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestPaymentService(t)

	_, err := svc.Update(context.Background(), 42, "Cash", "Pending")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestUpdatePaymentMissingRow(t *testing.T) {
	svc, mock := newTestPaymentService(t)

	mock.ExpectQuery("FROM payments WHERE booking_id").
		WillReturnRows(sqlmock.NewRows(paymentColumns()))

	_, err := svc.Update(context.Background(), 404, "Cash", "Paid")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
