package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking row does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo owns all SQL touching the bookings table.
type BookingRepo struct{ db *sql.DB }

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// CreateTx inserts a booking inside an open transaction and fills in
// the generated ID.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO bookings (customer_id, vehicle_id, package_id, booking_datetime, scheduled_datetime, status, current_stage_id, notes) VALUES (?,?,?,?,?,?,?,?)",
		b.CustomerID, b.VehicleID, b.PackageID, b.BookingDatetime, b.ScheduledDatetime, b.Status, b.CurrentStageID, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetTx loads a booking row and locks it for the duration of the
// transaction so concurrent stage advances serialize on it.
func (r *BookingRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
	var b model.Booking
	err := tx.QueryRowContext(ctx,
		"SELECT id, customer_id, vehicle_id, package_id, booking_datetime, scheduled_datetime, status, current_stage_id, notes FROM bookings WHERE id = ? FOR UPDATE",
		id).Scan(&b.ID, &b.CustomerID, &b.VehicleID, &b.PackageID, &b.BookingDatetime, &b.ScheduledDatetime, &b.Status, &b.CurrentStageID, &b.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// UpdateStageTx moves a booking to a new stage and status.
func (r *BookingRepo) UpdateStageTx(ctx context.Context, tx *sql.Tx, id uint64, stageID uint64, status model.BookingStatus) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE bookings SET current_stage_id = ?, status = ? WHERE id = ?",
		stageID, status, id)
	return err
}

// Exists reports whether a booking row with this ID exists.
func (r *BookingRepo) Exists(ctx context.Context, id uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM bookings WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ActiveRow is one line of the staff work queue.
type ActiveRow struct {
	ID              uint64    `json:"id"`
	BookingDatetime time.Time `json:"booking_datetime"`
	Status          string    `json:"status"`
	CustomerName    string    `json:"customer_name"`
	PlateNo         string    `json:"plate_no"`
	PackageName     string    `json:"package_name"`
	CurrentStage    *string   `json:"current_stage"`
}

// ListActive returns every booking still in the pipeline, oldest first.
func (r *BookingRepo) ListActive(ctx context.Context) ([]ActiveRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.booking_datetime, b.status, c.full_name, v.plate_no, p.package_name, s.stage_name
		 FROM bookings b
		 JOIN users c ON c.id = b.customer_id
		 JOIN vehicles v ON v.id = b.vehicle_id
		 JOIN packages p ON p.id = b.package_id
		 LEFT JOIN service_stages s ON s.id = b.current_stage_id
		 WHERE b.status IN ('Booked','InProgress')
		 ORDER BY b.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ActiveRow{}
	for rows.Next() {
		var row ActiveRow
		if err := rows.Scan(&row.ID, &row.BookingDatetime, &row.Status, &row.CustomerName, &row.PlateNo, &row.PackageName, &row.CurrentStage); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// CustomerRow is one line of a customer's own booking list.
type CustomerRow struct {
	ID              uint64    `json:"id"`
	BookingDatetime time.Time `json:"booking_datetime"`
	Status          string    `json:"status"`
	PlateNo         string    `json:"plate_no"`
	PackageName     string    `json:"package_name"`
	Price           string    `json:"price"`
	CurrentStage    *string   `json:"current_stage"`
}

// ListByCustomer returns a customer's bookings, newest first.
func (r *BookingRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]CustomerRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id, b.booking_datetime, b.status, v.plate_no, p.package_name, p.price, s.stage_name
		 FROM bookings b
		 JOIN vehicles v ON v.id = b.vehicle_id
		 JOIN packages p ON p.id = b.package_id
		 LEFT JOIN service_stages s ON s.id = b.current_stage_id
		 WHERE b.customer_id = ?
		 ORDER BY b.id DESC`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CustomerRow{}
	for rows.Next() {
		var row CustomerRow
		if err := rows.Scan(&row.ID, &row.BookingDatetime, &row.Status, &row.PlateNo, &row.PackageName, &row.Price, &row.CurrentStage); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Detail is the full single-booking view a customer sees.
type Detail struct {
	ID                uint64     `json:"id"`
	BookingDatetime   time.Time  `json:"booking_datetime"`
	ScheduledDatetime *time.Time `json:"scheduled_datetime"`
	Status            string     `json:"status"`
	PlateNo           string     `json:"plate_no"`
	PackageName       string     `json:"package_name"`
	Price             string     `json:"price"`
	CurrentStage      *string    `json:"current_stage"`
	Notes             *string    `json:"notes"`
}

// GetDetailForCustomer loads one booking scoped to its owner.
func (r *BookingRepo) GetDetailForCustomer(ctx context.Context, id, customerID uint64) (*Detail, error) {
	var d Detail
	err := r.db.QueryRowContext(ctx,
		`SELECT b.id, b.booking_datetime, b.scheduled_datetime, b.status, v.plate_no, p.package_name, p.price, s.stage_name, b.notes
		 FROM bookings b
		 JOIN vehicles v ON v.id = b.vehicle_id
		 JOIN packages p ON p.id = b.package_id
		 LEFT JOIN service_stages s ON s.id = b.current_stage_id
		 WHERE b.id = ? AND b.customer_id = ?`, id, customerID).
		Scan(&d.ID, &d.BookingDatetime, &d.ScheduledDatetime, &d.Status, &d.PlateNo, &d.PackageName, &d.Price, &d.CurrentStage, &d.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &d, nil
}
