package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness constraint
// (duplicate bookmark, like, tag name, email, slug).
var ErrConflict = errors.New("already exists")

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation (SQLSTATE 23505). The store's constraint is the sole arbiter of
// conflicting concurrent writes.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
