package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

func TestStageCreateDuplicateName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec("INSERT INTO service_stages").
		WithArgs("Washing", int64(2)).
		WillReturnError(fmt.Errorf("Error 1062 (23000): Duplicate entry 'Washing' for key 'uq_service_stages_name'"))

	repo := NewStageRepo(db)
	s := &model.Stage{Name: "Washing", Order: 2}
	if err := repo.Create(context.Background(), s); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Create = %v, want ErrDuplicate", err)
	}
	if s.ID != 0 {
		t.Fatalf("ID assigned on failed insert: %d", s.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStageCreateOtherErrorNotDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	driverErr := fmt.Errorf("Error 1213 (40001): Deadlock found when trying to get lock")
	mock.ExpectExec("INSERT INTO service_stages").
		WithArgs("Drying", int64(3)).
		WillReturnError(driverErr)

	repo := NewStageRepo(db)
	err = repo.Create(context.Background(), &model.Stage{Name: "Drying", Order: 3})
	if errors.Is(err, ErrDuplicate) {
		t.Fatal("non-duplicate driver error reported as ErrDuplicate")
	}
	if err == nil {
		t.Fatal("Create swallowed the driver error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
