package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/config"
	"github.com/iliyamo/car-wash-booking/internal/repository"
)

func TestLogoutAllRevokesEveryToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	h := NewAuthHandler(config.Config{}, repository.NewUserRepo(db), repository.NewTokenRepo(db))

	mock.ExpectExec("UPDATE refresh_tokens SET revoked_at=NOW").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout-all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(42))

	if err := h.LogoutAll(c); err != nil {
		t.Fatalf("LogoutAll: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLogoutAllWithoutIdentity(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	h := NewAuthHandler(config.Config{}, repository.NewUserRepo(db), repository.NewTokenRepo(db))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout-all", nil)
	rec := httptest.NewRecorder()

	if err := h.LogoutAll(e.NewContext(req, rec)); err != nil {
		t.Fatalf("LogoutAll: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
