package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrDuplicateKey is returned when a unique constraint is violated.
	ErrDuplicateKey = errors.New("duplicate key value")

	// ErrForeignKeyViolation is returned when a foreign key constraint is violated.
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrCheckViolation is returned when a check constraint is violated.
	ErrCheckViolation = errors.New("check constraint violation")
)

// postgres SQLSTATE codes, class 23 (integrity constraint violation)
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// TranslateError maps driver-specific constraint errors onto the sentinels
// above. The driver error stays in the chain. Other errors are returned as is.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return wrap(ErrDuplicateKey, err)
		case pgForeignKeyViolation:
			return wrap(ErrForeignKeyViolation, err)
		case pgCheckViolation:
			return wrap(ErrCheckViolation, err)
		}
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return wrap(ErrDuplicateKey, err)
		case sqlite3.ErrConstraintForeignKey:
			return wrap(ErrForeignKeyViolation, err)
		case sqlite3.ErrConstraintCheck:
			return wrap(ErrCheckViolation, err)
		}
	}
	return err
}

func wrap(sentinel, cause error) error {
	return fmt.Errorf("%w: %w", sentinel, cause)
}
