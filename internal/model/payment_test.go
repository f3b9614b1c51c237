package model

import "testing"

func TestParsePaymentMethod(t *testing.T) {
	for _, valid := range []string{"Cash", "Card", "Online"} {
		if _, err := ParsePaymentMethod(valid); err != nil {
			t.Fatalf("ParsePaymentMethod(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "cash", "Cheque"} {
		if _, err := ParsePaymentMethod(invalid); err == nil {
			t.Fatalf("ParsePaymentMethod(%q) accepted", invalid)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	for _, valid := range []string{"Unpaid", "Paid", "Partial", "Refunded"} {
		if _, err := ParsePaymentStatus(valid); err != nil {
			t.Fatalf("ParsePaymentStatus(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "paid", "Pending"} {
		if _, err := ParsePaymentStatus(invalid); err == nil {
			t.Fatalf("ParsePaymentStatus(%q) accepted", invalid)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	cases := map[BookingStatus]bool{
		StatusBooked:     false,
		StatusInProgress: false,
		StatusCompleted:  true,
		StatusCancelled:  true,
	}
	for status, want := range cases {
		if got := status.Terminal(); got != want {
			t.Fatalf("%s.Terminal() = %v, want %v", status, got, want)
		}
	}
}
