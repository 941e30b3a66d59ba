package order_test

import (
	"testing"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range order.Statuses() {
		t.Run(string(s), func(t *testing.T) {
			parsed, err := order.ParseStatus(string(s))
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		})
	}

	t.Run("unknown value", func(t *testing.T) {
		_, err := order.ParseStatus("cancelled")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"cancelled" is not a valid status`)
	})

	t.Run("empty value", func(t *testing.T) {
		_, err := order.ParseStatus("")
		require.Error(t, err)
	})
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    order.PaymentMethod
		wantErr bool
	}{
		{in: "cash", want: order.Cash},
		{in: "card", want: order.Card},
		{in: "split", want: order.Split},
		{in: "cash_card", want: order.Split},
		{in: "bank", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := order.ParsePaymentMethod(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
