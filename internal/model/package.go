package model

import "github.com/shopspring/decimal"

// Package is a purchasable wash package (`packages` table).  The price
// is copied into a booking's payment row at creation time; changing a
// package's price later never touches existing payments.
//
// Fields:
//
//	ID              - primary key identifier.
//	Name            - unique package name.
//	Price           - non-negative price, DECIMAL(10,2).
//	DurationMinutes - advertised duration, > 0.
//	IsActive        - inactive packages cannot be booked.
type Package struct {
	ID              uint64          `json:"id"`               // packages.id
	Name            string          `json:"name"`             // packages.package_name
	Price           decimal.Decimal `json:"price"`            // packages.price
	DurationMinutes uint32          `json:"duration_minutes"` // packages.duration_minutes
	IsActive        bool            `json:"is_active"`        // packages.is_active
}
