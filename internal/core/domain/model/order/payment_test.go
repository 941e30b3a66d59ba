package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestAllocatePayment(t *testing.T) {
	tests := []struct {
		name     string
		total    string
		method   order.PaymentMethod
		cash     *decimal.Decimal
		card     *decimal.Decimal
		wantCash string
		wantCard string
	}{
		{name: "cash takes everything", total: "150", method: order.Cash, wantCash: "150.00", wantCard: "0.00"},
		{name: "cash ignores supplied amounts", total: "150", method: order.Cash, cash: decPtr("10"), wantCash: "150.00", wantCard: "0.00"},
		{name: "card takes everything", total: "80.50", method: order.Card, wantCash: "0.00", wantCard: "80.50"},
		{name: "split evenly", total: "200", method: order.Split, wantCash: "100.00", wantCard: "100.00"},
		{name: "split odd cent goes to cash", total: "100.01", method: order.Split, wantCash: "50.01", wantCard: "50.00"},
		{name: "split derives card", total: "200", method: order.Split, cash: decPtr("120"), wantCash: "120.00", wantCard: "80.00"},
		{name: "split derives cash", total: "200", method: order.Split, card: decPtr("0"), wantCash: "200.00", wantCard: "0.00"},
		{name: "split uses both when they add up", total: "200", method: order.Split, cash: decPtr("50"), card: decPtr("150"), wantCash: "50.00", wantCard: "150.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.AllocatePayment(dec(tt.total), tt.method, tt.cash, tt.card)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCash, got.Cash.StringFixed(2))
			assert.Equal(t, tt.wantCard, got.Card.StringFixed(2))
			assert.True(t, got.Sum().Equal(dec(tt.total)), "cash + card must equal total")
		})
	}
}

func TestAllocatePayment_Errors(t *testing.T) {
	t.Run("both supplied but not adding up", func(t *testing.T) {
		_, err := order.AllocatePayment(dec("200"), order.Split, decPtr("50"), decPtr("50"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "does not equal total 200.00")
	})

	t.Run("supplied amount above total", func(t *testing.T) {
		_, err := order.AllocatePayment(dec("100"), order.Split, decPtr("150"), nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative supplied amount", func(t *testing.T) {
		_, err := order.AllocatePayment(dec("100"), order.Split, nil, decPtr("-1"))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := order.AllocatePayment(dec("100"), order.PaymentMethod("bank"), nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestBalances(t *testing.T) {
	assert.Equal(t, "100.00", order.BalanceAtCreation(dec("150"), dec("50")).StringFixed(2))
	assert.Equal(t, "70.00", order.BalanceAtDelivery(dec("150"), dec("50"), dec("30")).StringFixed(2))
	assert.Equal(t, "-10.00", order.BalanceAtDelivery(dec("100"), dec("60"), dec("50")).StringFixed(2))
}
