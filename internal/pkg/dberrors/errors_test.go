package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("insert student: %w", &pgconn.PgError{Code: CodeNumericValueOutOfRange})

	assert.Equal(t, CodeNumericValueOutOfRange, Code(wrapped))
	assert.Equal(t, "", Code(errors.New("connection refused")))
	assert.Equal(t, "", Code(nil))
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsInputError(&pgconn.PgError{Code: CodeInvalidTextRepresentation}))
	assert.False(t, IsInputError(&pgconn.PgError{Code: CodeUndefinedTable}))
	assert.True(t, IsMissingSchema(&pgconn.PgError{Code: CodeUndefinedTable}))

	dup := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "schema_migrations_pkey"}
	assert.True(t, IsDuplicateConstraintError(dup, "schema_migrations_pkey"))
	assert.False(t, IsDuplicateConstraintError(dup, "other"))
}
