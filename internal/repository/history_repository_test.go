package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHistoryListByBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewHistoryRepo(db)

	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(20 * time.Minute)
	mock.ExpectQuery("FROM booking_stage_history").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "stage_name", "start_time", "end_time", "full_name"}).
			AddRow(12, "Drying", end, nil, "Ali Raza").
			AddRow(11, "Washing", start, end, "Ali Raza"))

	rows, err := repo.ListByBooking(context.Background(), 42)
	if err != nil {
		t.Fatalf("ListByBooking: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].StageName != "Drying" || rows[0].EndTime != nil {
		t.Fatalf("newest row should be the open Drying entry, got %+v", rows[0])
	}
	if rows[1].EndTime == nil || !rows[1].EndTime.Equal(end) {
		t.Fatalf("closed row end_time = %v, want %v", rows[1].EndTime, end)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestHistoryCloseOpenIsNoOpWithoutOpenRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewHistoryRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE booking_stage_history SET end_time").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := repo.CloseOpenTx(context.Background(), tx, 42, 1, time.Now()); err != nil {
		t.Fatalf("CloseOpenTx with no open row: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
