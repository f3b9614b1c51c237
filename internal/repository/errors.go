// Package repository implements the data access layer on top of
// database/sql.  Shared sentinel errors live here; entity-specific
// sentinels sit next to their repository.  Not-found conditions are
// reported as sql.ErrNoRows or a named sentinel so higher layers can
// translate them into typed engine errors.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert violates a unique constraint
// (package name, stage name or order, vehicle plate, user phone/email).
// Handlers translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate entry")

// isDuplicate detects a MySQL 1062 duplicate-key error.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Error 1062")
}
