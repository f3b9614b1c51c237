package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"

	"github.com/iliyamo/car-wash-booking/internal/repository"
)

func newTestAssignmentService(t *testing.T) (*AssignmentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	svc := NewAssignmentService(
		repository.NewAssignmentRepo(db),
		repository.NewBookingRepo(db),
		repository.NewUserRepo(db),
		zap.NewNop())
	return svc, mock
}

func userColumns() []string {
	return []string{"id", "full_name", "phone", "email", "password_hash", "role", "created_at"}
}

func TestAssignStaff(t *testing.T) {
	svc, mock := newTestAssignmentService(t)

	mock.ExpectQuery("SELECT 1 FROM bookings").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(9, "Ali Raza", "0301-1111111", nil, "x", "Staff", time.Now()))
	mock.ExpectExec("INSERT IGNORE INTO booking_staff_assignment").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Assign(context.Background(), 42, 9); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAssignStaffIdempotent(t *testing.T) {
	svc, mock := newTestAssignmentService(t)

	mock.ExpectQuery("SELECT 1 FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(9, "Ali Raza", "0301-1111111", nil, "x", "Staff", time.Now()))
	// INSERT IGNORE hits the existing pair: zero rows affected, no error.
	mock.ExpectExec("INSERT IGNORE INTO booking_staff_assignment").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := svc.Assign(context.Background(), 42, 9); err != nil {
		t.Fatalf("repeat Assign: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAssignRejectsCustomerRole(t *testing.T) {
	svc, mock := newTestAssignmentService(t)

	mock.ExpectQuery("SELECT 1 FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(9, "Sara Khan", "0302-2222222", nil, "x", "Customer", time.Now()))

	err := svc.Assign(context.Background(), 42, 9)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAssignMissingBooking(t *testing.T) {
	svc, mock := newTestAssignmentService(t)

	mock.ExpectQuery("SELECT 1 FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	err := svc.Assign(context.Background(), 404, 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestAssignMissingUser(t *testing.T) {
	svc, mock := newTestAssignmentService(t)

	mock.ExpectQuery("SELECT 1 FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("FROM users WHERE id").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	err := svc.Assign(context.Background(), 42, 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
