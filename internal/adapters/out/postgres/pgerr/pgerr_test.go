package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm duplicated key", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"pg unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, true},
		{"pg other code", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgerr.IsUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, pgerr.IsForeignKeyViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
	assert.True(t, pgerr.IsForeignKeyViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, pgerr.IsForeignKeyViolation(gorm.ErrDuplicatedKey))
}

func TestTranslate(t *testing.T) {
	err := pgerr.Translate(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "sku", "12345")

	assert.ErrorIs(t, err, errs.ErrValueIsDuplicated)
	var dup *errs.ValueIsDuplicatedError
	if assert.ErrorAs(t, err, &dup) {
		assert.Equal(t, "sku", dup.ParamName)
		assert.Equal(t, "12345", dup.Value)
	}

	plain := errors.New("connection reset")
	assert.Same(t, plain, pgerr.Translate(plain, "sku", "12345"))
}

func TestTranslate_NumericOverflow(t *testing.T) {
	overflow := &pgconn.PgError{Code: pgerrcode.NumericValueOutOfRange}
	assert.True(t, pgerr.IsNumericOutOfRange(fmt.Errorf("update: %w", overflow)))
	assert.False(t, pgerr.IsNumericOutOfRange(gorm.ErrDuplicatedKey))

	err := pgerr.Translate(overflow, "job_order_number", "JO-0001")

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	var outOfRange *errs.ValueIsOutOfRangeError
	if assert.ErrorAs(t, err, &outOfRange) {
		assert.Equal(t, "amount", outOfRange.ParamName)
		assert.Equal(t, "99999999.99", outOfRange.Max)
	}
}
