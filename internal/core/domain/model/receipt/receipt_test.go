package receipt_test

import (
	"testing"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/receipt"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder("JO-0001", 1, time.Now().AddDate(0, 0, 7), order.Terms{
		TotalAmount:   decimal.NewFromInt(150),
		AdvanceAmount: decimal.NewFromInt(50),
		PaymentMethod: order.Cash,
	}, "")
	require.NoError(t, err)
	o.AssignID(9)
	return o
}

func TestNewReceipt(t *testing.T) {
	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("valid", func(t *testing.T) {
		r, err := receipt.NewReceipt("RCP001", jobOrder(t), now, decimal.NewFromInt(100), "final")
		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, int64(9), r.JobOrderID())
		assert.Equal(t, "100.00", r.Amount().StringFixed(2))
	})

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := receipt.NewReceipt("RCP001", jobOrder(t), now, decimal.Zero, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("amount cannot exceed balance", func(t *testing.T) {
		_, err := receipt.NewReceipt("RCP001", jobOrder(t), now, decimal.RequireFromString("100.01"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot exceed job order balance (100.00)")
	})

	t.Run("order must be active", func(t *testing.T) {
		o := jobOrder(t)
		o.Deactivate()
		_, err := receipt.NewReceipt("RCP001", o, now, decimal.NewFromInt(1), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), receipt.ErrJobOrderIsInactive.Error())
	})

	t.Run("unconstructed order", func(t *testing.T) {
		_, err := receipt.NewReceipt("RCP001", nil, now, decimal.NewFromInt(1), "")
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
