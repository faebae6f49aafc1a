package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the placement store cares about.
const (
	CodeUniqueViolation           = "23505"
	CodeInvalidTextRepresentation = "22P02"
	CodeNumericValueOutOfRange    = "22003"
	CodeUndefinedTable            = "42P01"
)

// Code returns the PostgreSQL SQLSTATE of err, or "" when err is not a server error.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsInputError reports whether the store rejected a value it could not convert,
// e.g. a non-numeric package or an out-of-range year.
func IsInputError(err error) bool {
	switch Code(err) {
	case CodeInvalidTextRepresentation, CodeNumericValueOutOfRange:
		return true
	}
	return false
}

// IsMissingSchema reports whether a query ran before migrations created the tables.
func IsMissingSchema(err error) bool {
	return Code(err) == CodeUndefinedTable
}
