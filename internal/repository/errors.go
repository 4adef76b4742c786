// Package repository contains data access logic separated from HTTP
// handlers.  Every repository speaks database/sql against the single-file
// store and reports failures through sentinel errors so handlers can map
// them onto the right response without inspecting driver internals.
package repository

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert violates a uniqueness
// constraint (book title/author, cafe name, movie title).  Handlers
// translate this into a user-facing conflict instead of a raw fault.
var ErrDuplicate = errors.New("duplicate value for unique column")

// isUniqueViolation reports whether err is the SQLite driver's uniqueness
// failure.  The driver exposes no stable error type for this, so the
// message text is the contract, same as matching MySQL's error 1062.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
