package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

// ErrStageNotFound indicates a stage id with no matching row.
var ErrStageNotFound = errors.New("stage not found")

// ErrNoStages indicates the catalog has no stages defined at all, so no
// booking can be created.
var ErrNoStages = errors.New("no service stages defined")

// StageRepo manages persistence for the ordered stage pipeline.
type StageRepo struct {
	db *sql.DB
}

// NewStageRepo constructs a StageRepo with the given DB handle.
func NewStageRepo(db *sql.DB) *StageRepo { return &StageRepo{db: db} }

// Create inserts a new stage and assigns the generated ID back to the
// struct.  A name or order collision surfaces as ErrDuplicate.
func (r *StageRepo) Create(ctx context.Context, s *model.Stage) error {
	const q = `INSERT INTO service_stages (stage_name, stage_order) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Order)
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
	s.ID = uint64(id)
	return nil
}

// List returns all stages ordered by their pipeline position.
func (r *StageRepo) List(ctx context.Context) ([]model.Stage, error) {
	const q = `SELECT id, stage_name, stage_order FROM service_stages ORDER BY stage_order ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Stage, 0)
	for rows.Next() {
		var s model.Stage
		if err := rows.Scan(&s.ID, &s.Name, &s.Order); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FirstTx returns the stage with the minimum order within the caller's
// transaction.  Every new booking starts in this stage.  Returns
// ErrNoStages when the catalog is empty.
func (r *StageRepo) FirstTx(ctx context.Context, tx *sql.Tx) (*model.Stage, error) {
	const q = `SELECT id, stage_name, stage_order FROM service_stages ORDER BY stage_order ASC LIMIT 1`
	var s model.Stage
	err := tx.QueryRowContext(ctx, q).Scan(&s.ID, &s.Name, &s.Order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoStages
		}
		return nil, err
	}
	return &s, nil
}

// OrderTx returns the order value for the given stage id within the
// caller's transaction.  Returns ErrStageNotFound when absent.
func (r *StageRepo) OrderTx(ctx context.Context, tx *sql.Tx, stageID uint64) (uint32, error) {
	const q = `SELECT stage_order FROM service_stages WHERE id = ?`
	var order uint32
	err := tx.QueryRowContext(ctx, q, stageID).Scan(&order)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrStageNotFound
		}
		return 0, err
	}
	return order, nil
}

// MaxOrderTx returns the highest order across all stages.  Completion
// is defined solely as "advanced into the stage holding this order" at
// transition time.
func (r *StageRepo) MaxOrderTx(ctx context.Context, tx *sql.Tx) (uint32, error) {
	const q = `SELECT MAX(stage_order) FROM service_stages`
	var max sql.NullInt64
	if err := tx.QueryRowContext(ctx, q).Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, ErrNoStages
	}
	return uint32(max.Int64), nil
}
