package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when no row matches the query.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a user with the same email already exists.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrUserReference is returned when an activity points at a user that does not exist.
	ErrUserReference = errors.New("referenced user does not exist")
)

// Postgres SQLSTATE codes we branch on.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	invalidTextFormat   = "22P02"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsUniqueViolation reports whether err is a Postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	return pqCode(err) == uniqueViolation
}

// IsForeignKeyViolation reports whether err is a Postgres foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == foreignKeyViolation
}

func isInvalidText(err error) bool {
	return pqCode(err) == invalidTextFormat
}
