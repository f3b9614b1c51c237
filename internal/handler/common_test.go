package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/service"
)

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", fmt.Errorf("bad input: %w", service.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("booking 9: %w", service.ErrNotFound), http.StatusNotFound},
		{"invalid transition", fmt.Errorf("booking 9 is Completed: %w", service.ErrInvalidTransition), http.StatusConflict},
		{"conflict", fmt.Errorf("plate taken: %w", service.ErrConflict), http.StatusConflict},
		{"invalid state", fmt.Errorf("package inactive: %w", service.ErrInvalidState), http.StatusUnprocessableEntity},
		{"unknown", fmt.Errorf("driver gone"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			if err := respondError(c, tc.err); err != nil {
				t.Fatalf("respondError: %v", err)
			}
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestGetUserID(t *testing.T) {
	e := echo.New()
	newCtx := func(v interface{}) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("user_id", v)
		return c
	}

	// JWT numeric claims arrive as float64.
	for _, v := range []interface{}{uint64(7), int(7), int64(7), float64(7), "7"} {
		got, err := getUserID(newCtx(v))
		if err != nil {
			t.Fatalf("getUserID(%T): %v", v, err)
		}
		if got != 7 {
			t.Fatalf("getUserID(%T) = %d, want 7", v, got)
		}
	}

	if _, err := getUserID(newCtx("not-a-number")); err == nil {
		t.Fatal("getUserID accepted a non-numeric string")
	}
	if _, err := getUserID(newCtx(nil)); err == nil {
		t.Fatal("getUserID accepted a missing value")
	}
}
