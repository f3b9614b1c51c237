package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

// VehicleRepo manages persistence for customer vehicles.
type VehicleRepo struct {
	db *sql.DB
}

// NewVehicleRepo constructs a VehicleRepo with the given DB handle.
func NewVehicleRepo(db *sql.DB) *VehicleRepo { return &VehicleRepo{db: db} }

// Create inserts a vehicle for a customer.  A plate number collision
// surfaces as ErrDuplicate.
func (r *VehicleRepo) Create(ctx context.Context, v *model.Vehicle) error {
	const q = `INSERT INTO vehicles (customer_id, plate_no, make, model, color, vehicle_type) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, v.CustomerID, v.PlateNo, v.Make, v.Model, v.Color, v.Type)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// ListByCustomer returns a customer's vehicles, newest first.
func (r *VehicleRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Vehicle, error) {
	const q = `SELECT id, customer_id, plate_no, make, model, color, vehicle_type FROM vehicles WHERE customer_id = ? ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Vehicle, 0)
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.CustomerID, &v.PlateNo, &v.Make, &v.Model, &v.Color, &v.Type); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// OwnedByCustomerTx reports whether the vehicle exists and belongs to
// the customer.  Runs in the caller's transaction so the booking
// creation sees a consistent view.
func (r *VehicleRepo) OwnedByCustomerTx(ctx context.Context, tx *sql.Tx, vehicleID, customerID uint64) (bool, error) {
	const q = `SELECT 1 FROM vehicles WHERE id = ? AND customer_id = ?`
	var one int
	err := tx.QueryRowContext(ctx, q, vehicleID, customerID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
