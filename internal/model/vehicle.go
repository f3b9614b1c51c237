package model

// Vehicle is a customer-owned vehicle as stored in the `vehicles`
// table.  The plate number is globally unique; the remaining
// descriptive fields are optional.
type Vehicle struct {
	ID         uint64  `json:"id"`          // vehicles.id
	CustomerID uint64  `json:"customer_id"` // vehicles.customer_id
	PlateNo    string  `json:"plate_no"`    // vehicles.plate_no
	Make       *string `json:"make"`        // vehicles.make (nullable)
	Model      *string `json:"model"`       // vehicles.model (nullable)
	Color      *string `json:"color"`       // vehicles.color (nullable)
	Type       *string `json:"type"`        // vehicles.vehicle_type (nullable)
}
