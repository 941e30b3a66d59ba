package order

import (
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the closed set of ways an order total is paid.
type PaymentMethod string

const (
	Cash  PaymentMethod = "cash"
	Card  PaymentMethod = "card"
	Split PaymentMethod = "split"
)

// legacySplit is the historical name for Split still sent by older clients.
const legacySplit = "cash_card"

// ParsePaymentMethod converts external input into a PaymentMethod.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	if raw == legacySplit {
		return Split, nil
	}
	m := PaymentMethod(raw)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m PaymentMethod) Validate() error {
	switch m {
	case Cash, Card, Split:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment_method",
			fmt.Errorf("%q is not one of cash, card, split", string(m)))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// ChannelAmounts is a resolved payment split.
type ChannelAmounts struct {
	Cash decimal.Decimal
	Card decimal.Decimal
}

// Sum returns cash + card.
func (c ChannelAmounts) Sum() decimal.Decimal {
	return c.Cash.Add(c.Card)
}

// AllocatePayment resolves the channel amounts for total under method.
// cash and card are the amounts the caller supplied; nil means not supplied.
//
// For Split, no supplied amount splits the total evenly (the cash half takes
// the extra cent), one supplied amount derives the other and two supplied
// amounts must add up to total. The result always satisfies
// Cash + Card == total.
func AllocatePayment(total decimal.Decimal, method PaymentMethod, cash, card *decimal.Decimal) (ChannelAmounts, error) {
	if err := method.Validate(); err != nil {
		return ChannelAmounts{}, err
	}
	total = kernel.RoundMoney(total)

	switch method {
	case Cash:
		return ChannelAmounts{Cash: total, Card: decimal.Zero}, nil
	case Card:
		return ChannelAmounts{Cash: decimal.Zero, Card: total}, nil
	}

	switch {
	case cash == nil && card == nil:
		half := kernel.RoundMoney(total.Div(decimal.NewFromInt(2)))
		return ChannelAmounts{Cash: half, Card: total.Sub(half)}, nil
	case card == nil:
		supplied, err := suppliedChannel("cash_amount", *cash, total)
		if err != nil {
			return ChannelAmounts{}, err
		}
		return ChannelAmounts{Cash: supplied, Card: total.Sub(supplied)}, nil
	case cash == nil:
		supplied, err := suppliedChannel("card_amount", *card, total)
		if err != nil {
			return ChannelAmounts{}, err
		}
		return ChannelAmounts{Cash: total.Sub(supplied), Card: supplied}, nil
	}

	c, cashErr := kernel.NonNegativeAmount("cash_amount", *cash)
	d, cardErr := kernel.NonNegativeAmount("card_amount", *card)
	if cashErr != nil || cardErr != nil {
		return ChannelAmounts{}, errors.Join(cashErr, cardErr)
	}
	resolved := ChannelAmounts{Cash: c, Card: d}
	if !resolved.Sum().Equal(total) {
		return ChannelAmounts{}, errs.NewValueIsInvalidErrorWithCause("card_amount",
			fmt.Errorf("cash %s + card %s does not equal total %s",
				c.StringFixed(kernel.MoneyPlaces), d.StringFixed(kernel.MoneyPlaces), total.StringFixed(kernel.MoneyPlaces)))
	}
	return resolved, nil
}

func suppliedChannel(paramName string, amount, total decimal.Decimal) (decimal.Decimal, error) {
	amount = kernel.RoundMoney(amount)
	if amount.IsNegative() || amount.GreaterThan(total) {
		return decimal.Zero, errs.NewValueIsOutOfRangeError(paramName,
			amount.StringFixed(kernel.MoneyPlaces), "0.00", total.StringFixed(kernel.MoneyPlaces))
	}
	return amount, nil
}
