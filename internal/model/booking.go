package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	StatusBooked     BookingStatus = "Booked"
	StatusInProgress BookingStatus = "InProgress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
)

// Terminal reports whether no further stage advance is allowed from s.
// Completed and Cancelled bookings are frozen.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking records a customer's request to run one vehicle through the
// stage pipeline under a chosen package (`bookings` table).
//
// CurrentStageID is set to the lowest-order stage at creation and is
// only nil transiently (the schema nulls it if its stage row is ever
// deleted).  Status is recomputed from the stage order at each
// transition, not derived live from history.
//
// Fields:
//
//	ID                - primary key identifier.
//	CustomerID        - customer who placed the booking.
//	VehicleID         - vehicle being processed.
//	PackageID         - package chosen at creation time.
//	BookingDatetime   - when the booking was created.
//	ScheduledDatetime - optional requested slot.
//	Status            - Booked, InProgress, Completed or Cancelled.
//	CurrentStageID    - stage the booking currently sits in.
//	Notes             - optional free text.
type Booking struct {
	ID                uint64        `json:"id"`                 // bookings.id
	CustomerID        uint64        `json:"customer_id"`        // bookings.customer_id
	VehicleID         uint64        `json:"vehicle_id"`         // bookings.vehicle_id
	PackageID         uint64        `json:"package_id"`         // bookings.package_id
	BookingDatetime   time.Time     `json:"booking_datetime"`   // bookings.booking_datetime
	ScheduledDatetime *time.Time    `json:"scheduled_datetime"` // bookings.scheduled_datetime (nullable)
	Status            BookingStatus `json:"status"`             // bookings.status
	CurrentStageID    *uint64       `json:"current_stage_id"`   // bookings.current_stage_id (nullable)
	Notes             *string       `json:"notes"`              // bookings.notes (nullable)
}
