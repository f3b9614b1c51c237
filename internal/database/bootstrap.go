package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/utils"
)

// EnsureAdmin creates the bootstrap admin account when no admin exists
// yet.  The password is hashed with the configured bcrypt cost, which
// is why this runs in Go rather than in a seed migration.
func EnsureAdmin(ctx context.Context, db *sql.DB, phone, password string, bcryptCost int) error {
	var n int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE role = ?", model.RoleAdmin).Scan(&n)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		return nil
	}
	hash, err := utils.HashPassword(password, bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO users (full_name, phone, email, password_hash, role) VALUES (?,?,?,?,?)",
		"Admin", phone, "admin@carwash.local", hash, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}
