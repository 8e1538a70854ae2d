package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslatePostgresErrors(t *testing.T) {
	cases := map[string]error{
		pgUniqueViolation:     ErrDuplicateKey,
		pgForeignKeyViolation: ErrForeignKeyViolation,
		pgCheckViolation:      ErrCheckViolation,
	}
	for code, want := range cases {
		t.Run(code, func(t *testing.T) {
			driverErr := &pgconn.PgError{Code: code, Message: "violation"}
			err := TranslateError(fmt.Errorf("insert: %w", driverErr))

			assert.ErrorIs(t, err, want)
			var pgErr *pgconn.PgError
			assert.True(t, errors.As(err, &pgErr), "driver error stays in chain")
		})
	}
}

func TestTranslateSQLiteErrors(t *testing.T) {
	cases := []struct {
		code sqlite3.ErrNoExtended
		want error
	}{
		{sqlite3.ErrConstraintUnique, ErrDuplicateKey},
		{sqlite3.ErrConstraintPrimaryKey, ErrDuplicateKey},
		{sqlite3.ErrConstraintForeignKey, ErrForeignKeyViolation},
		{sqlite3.ErrConstraintCheck, ErrCheckViolation},
	}
	for _, tc := range cases {
		err := TranslateError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: tc.code})
		assert.ErrorIs(t, err, tc.want)
	}
}

func TestTranslateLeavesOtherErrorsAlone(t *testing.T) {
	assert.NoError(t, TranslateError(nil))
	assert.Same(t, gorm.ErrRecordNotFound, TranslateError(gorm.ErrRecordNotFound))

	other := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(other), TranslateError(other))
}
