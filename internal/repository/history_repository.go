package repository

import (
	"context"
	"database/sql"
	"time"
)

// HistoryRepo owns the booking_stage_history ledger.
type HistoryRepo struct{ db *sql.DB }

// NewHistoryRepo constructs a HistoryRepo with the given DB handle.
func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// CloseOpenTx stamps end_time on the open history row for a stage.
// A booking has at most one open row per stage; when none exists this
// is a no-op.
func (r *HistoryRepo) CloseOpenTx(ctx context.Context, tx *sql.Tx, bookingID, stageID uint64, endedAt time.Time) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE booking_stage_history SET end_time = ? WHERE booking_id = ? AND stage_id = ? AND end_time IS NULL",
		endedAt, bookingID, stageID)
	return err
}

// InsertTx appends a new open history row for the stage just entered.
func (r *HistoryRepo) InsertTx(ctx context.Context, tx *sql.Tx, bookingID, stageID, staffID uint64, startedAt time.Time) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO booking_stage_history (booking_id, stage_id, start_time, updated_by_staff_id) VALUES (?,?,?,?)",
		bookingID, stageID, startedAt, staffID)
	return err
}

// HistoryRow is one entry of a booking's stage timeline.
type HistoryRow struct {
	ID        uint64     `json:"id"`
	StageName string     `json:"stage_name"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	StaffName string     `json:"staff_name"`
}

// ListByBooking returns the stage timeline, most recent entry first.
func (r *HistoryRepo) ListByBooking(ctx context.Context, bookingID uint64) ([]HistoryRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT h.id, s.stage_name, h.start_time, h.end_time, u.full_name
		 FROM booking_stage_history h
		 JOIN service_stages s ON s.id = h.stage_id
		 JOIN users u ON u.id = h.updated_by_staff_id
		 WHERE h.booking_id = ?
		 ORDER BY h.id DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []HistoryRow{}
	for rows.Next() {
		var row HistoryRow
		if err := rows.Scan(&row.ID, &row.StageName, &row.StartTime, &row.EndTime, &row.StaffName); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
