// Package pgerr classifies database errors returned by gorm into the typed
// errors of internal/pkg/errs.
package pgerr

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err was caused by a unique index.
// Dialectors opened with TranslateError report gorm.ErrDuplicatedKey; raw
// PostgreSQL errors carry SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports whether err was caused by a foreign key.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// IsNumericOutOfRange reports whether a value did not fit its numeric column.
func IsNumericOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.NumericValueOutOfRange
}

// Translate maps a unique violation to errs.ValueIsDuplicatedError for the
// given param and value, and numeric overflow to errs.ValueIsOutOfRangeError.
// Other errors are returned unchanged.
func Translate(err error, paramName string, value any) error {
	switch {
	case IsUniqueViolation(err):
		return errs.NewValueIsDuplicatedErrorWithCause(paramName, value, err)
	case IsNumericOutOfRange(err):
		return errs.NewValueIsOutOfRangeErrorWithCause("amount", nil,
			kernel.MaxAmount.Neg().StringFixed(kernel.MoneyPlaces), kernel.MaxAmount.StringFixed(kernel.MoneyPlaces), err)
	}
	return err
}
