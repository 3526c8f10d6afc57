package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for the failure taxonomy. Services return these (usually
// wrapped with context via fmt.Errorf and %w) and handlers map them to HTTP
// status codes.
var (
	// ErrDuplicateName is returned when a natural key (item name, category
	// name, supplier name, username) collides with an existing row.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed input: negative quantity
	// or price, missing required field, unknown enum value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMissingPrice is returned when valuation is attempted over an item
	// whose cost price is absent.
	ErrMissingPrice = errors.New("missing cost price")
)

// Postgres error codes we translate into the taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// FromPg translates low-level pgx errors into taxonomy errors so repository
// callers never have to inspect SQLSTATE codes themselves. Unrecognised
// errors pass through unchanged.
func FromPg(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicateName, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		}
	}
	return err
}

func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
