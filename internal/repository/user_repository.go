package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/utils"
)

// ErrUserNotFound indicates a user id with no matching row.
var ErrUserNotFound = errors.New("user not found")

// UserRepo manages persistence for the single users table holding
// customers, staff and admins.
type UserRepo struct{ DB *sql.DB }

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user, returning the new ID.
// Phone/email uniqueness spans all roles; collisions surface as
// ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, fullName, phone string, email *string, password, role string, cost int) (uint64, error) {
	phone = strings.TrimSpace(phone)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (full_name, phone, email, password_hash, role) VALUES (?,?,?,?,?)",
		fullName, phone, email, hash, role)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByPhone fetches a user by the login identifier.
func (r *UserRepo) GetByPhone(ctx context.Context, phone string) (model.User, error) {
	phone = strings.TrimSpace(phone)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, full_name, phone, email, password_hash, role, created_at FROM users WHERE phone=? LIMIT 1",
		phone).Scan(&u.ID, &u.FullName, &u.Phone, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.  Returns ErrUserNotFound when absent.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, full_name, phone, email, password_hash, role, created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.FullName, &u.Phone, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, ErrUserNotFound
	}
	return u, err
}
