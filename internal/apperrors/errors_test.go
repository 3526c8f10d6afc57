package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFromPgNil(t *testing.T) {
	assert.NoError(t, FromPg(nil))
}

func TestFromPgNoRows(t *testing.T) {
	err := FromPg(pgx.ErrNoRows)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromPgUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "items_name_key"}
	err := FromPg(fmt.Errorf("insert item: %w", pgErr))

	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Contains(t, err.Error(), "items_name_key")
}

func TestFromPgForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "items_category_id_fkey"}
	err := FromPg(pgErr)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromPgPassthrough(t *testing.T) {
	orig := errors.New("connection reset")
	assert.Equal(t, orig, FromPg(orig))
}

func TestInvalidf(t *testing.T) {
	err := Invalidf("quantity %s is negative", "-1")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "quantity -1 is negative")
}
