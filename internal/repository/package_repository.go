package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/car-wash-booking/internal/model"
)

// ErrPackageNotFound indicates a package id with no matching row.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepo manages persistence for wash packages.
type PackageRepo struct {
	db *sql.DB
}

// NewPackageRepo constructs a PackageRepo with the given DB handle.
func NewPackageRepo(db *sql.DB) *PackageRepo { return &PackageRepo{db: db} }

// Create inserts a new package and assigns the generated ID back to the
// struct.  A name collision surfaces as ErrDuplicate.
func (r *PackageRepo) Create(ctx context.Context, p *model.Package) error {
	const q = `INSERT INTO packages (package_name, price, duration_minutes, is_active) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Price, p.DurationMinutes, p.IsActive)
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
	p.ID = uint64(id)
	return nil
}

// GetTx loads a package by id within the caller's transaction.  The
// price read here is the one copied into the booking's payment row, so
// the read must share the booking-creation transaction.
func (r *PackageRepo) GetTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Package, error) {
	const q = `SELECT id, package_name, price, duration_minutes, is_active FROM packages WHERE id = ?`
	var p model.Package
	err := tx.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.DurationMinutes, &p.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListActive returns all bookable packages, cheapest first.
func (r *PackageRepo) ListActive(ctx context.Context) ([]model.Package, error) {
	const q = `SELECT id, package_name, price, duration_minutes, is_active FROM packages WHERE is_active = 1 ORDER BY price ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	result := make([]model.Package, 0)
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.DurationMinutes, &p.IsActive); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SetActive flips a package's bookable flag.  Returns
// ErrPackageNotFound when no such package exists.
func (r *PackageRepo) SetActive(ctx context.Context, id uint64, active bool) error {
	const q = `UPDATE packages SET is_active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, active, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Either absent or already in the requested state; disambiguate.
		var one int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM packages WHERE id = ?`, id).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPackageNotFound
		}
		return err
	}
	return nil
}
