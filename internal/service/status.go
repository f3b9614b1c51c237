package service

import "github.com/iliyamo/car-wash-booking/internal/model"

// statusForOrder derives the booking status implied by entering a
// stage: reaching the highest-ordered stage completes the booking,
// anything else keeps it in progress.  Moving backward therefore
// reopens a pipeline position without special handling.
func statusForOrder(order, maxOrder uint32) model.BookingStatus {
	if order == maxOrder {
		return model.StatusCompleted
	}
	return model.StatusInProgress
}
