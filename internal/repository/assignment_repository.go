package repository

import (
	"context"
	"database/sql"
	"time"
)

// AssignmentRepo owns the booking_staff_assignment registry.
type AssignmentRepo struct{ db *sql.DB }

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo { return &AssignmentRepo{db: db} }

// Insert records a staff assignment.  The composite primary key makes
// the operation idempotent; the second return value reports whether a
// new row was actually written.
func (r *AssignmentRepo) Insert(ctx context.Context, bookingID, staffID uint64, assignedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO booking_staff_assignment (booking_id, staff_id, assigned_at) VALUES (?,?,?)",
		bookingID, staffID, assignedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AssignmentRow is one staff member assigned to a booking.
type AssignmentRow struct {
	StaffID    uint64    `json:"staff_id"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	AssignedAt time.Time `json:"assigned_at"`
}

// ListByBooking returns assigned staff, most recent assignment first.
func (r *AssignmentRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]AssignmentRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.staff_id, u.full_name, u.role, a.assigned_at
		 FROM booking_staff_assignment a
		 JOIN users u ON u.id = a.staff_id
		 WHERE a.booking_id = ?
		 ORDER BY a.assigned_at DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AssignmentRow{}
	for rows.Next() {
		var row AssignmentRow
		if err := rows.Scan(&row.StaffID, &row.FullName, &row.Role, &row.AssignedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
