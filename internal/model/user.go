package model

import "time"

// Role values stored in the users.role column.  A single table holds
// customers, staff and administrators; the role discriminant decides
// which parts of the API a user may call.  Phone and email uniqueness
// span all roles.
const (
	RoleCustomer = "Customer"
	RoleStaff    = "Staff"
	RoleAdmin    = "Admin"
)

// ValidRole reports whether s is one of the recognised role names.
func ValidRole(s string) bool {
	switch s {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column.  The struct carries the
// password hash, so handlers expose users through their own response
// types instead of serializing it directly.
//
// Fields:
//
//	ID           - primary key identifier of the user.
//	FullName     - display name.
//	Phone        - unique phone number, used as the login identifier.
//	Email        - optional unique email address (nil when absent).
//	PasswordHash - bcrypt hashed password.
//	Role         - Customer, Staff or Admin.
//	CreatedAt    - timestamp of creation.
type User struct {
	ID           uint64    // users.id
	FullName     string    // users.full_name
	Phone        string    // users.phone
	Email        *string   // users.email (nullable)
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Each
// refresh token belongs to a user; only the SHA-256 hash of the raw
// token is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
