package order

import (
	"atelier/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// BalanceAtCreation is the outstanding amount when an order is created or its
// total/advance are revised.
func BalanceAtCreation(total, advance decimal.Decimal) decimal.Decimal {
	return kernel.RoundMoney(total.Sub(advance))
}

// BalanceAtDelivery is the outstanding amount after the money received on
// delivery. It deliberately differs from BalanceAtCreation.
func BalanceAtDelivery(total, advance, received decimal.Decimal) decimal.Decimal {
	return kernel.RoundMoney(total.Sub(advance).Sub(received))
}
