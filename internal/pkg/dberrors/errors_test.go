package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: UniqueViolation, ConstraintName: "departments_code_key"})
	fk := &pgconn.PgError{Code: ForeignKeyViolation}

	assert.True(t, IsDuplicateKeyError(unique))
	assert.True(t, IsDuplicateConstraintError(unique, "departments_code_key"))
	assert.False(t, IsDuplicateConstraintError(unique, "departments_name_key"))
	assert.False(t, IsDuplicateKeyError(fk))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.True(t, IsNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))
}
