package service

import (
	"testing"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

func TestStatusForOrder(t *testing.T) {
	cases := []struct {
		name     string
		order    uint32
		maxOrder uint32
		want     model.BookingStatus
	}{
		{"first of many", 1, 4, model.StatusInProgress},
		{"middle", 3, 4, model.StatusInProgress},
		{"last", 4, 4, model.StatusCompleted},
		{"single stage pipeline", 1, 1, model.StatusCompleted},
		{"backward move reopens", 2, 4, model.StatusInProgress},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := statusForOrder(tc.order, tc.maxOrder)
			if got != tc.want {
				t.Fatalf("statusForOrder(%d, %d) = %s, want %s", tc.order, tc.maxOrder, got, tc.want)
			}
		})
	}
}
