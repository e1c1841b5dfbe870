package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err did not
// come from the PostgreSQL server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isMissingReference reports whether err means that a referenced row does
// not exist: either a foreign key points nowhere or the given id is not a
// valid UUID at all (so no row can carry it).
func isMissingReference(err error) bool {
	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation, pgerrcode.InvalidTextRepresentation:
		return true
	default:
		return false
	}
}

// isMalformedID reports whether err was caused by an id that is not a valid
// UUID. Lookups treat it as "not found".
func isMalformedID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}
