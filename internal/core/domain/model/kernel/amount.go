package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of fractional digits kept for monetary values.
const MoneyPlaces int32 = 2

// MaxAmount is the largest magnitude a NUMERIC(10,2) money column holds.
var MaxAmount = decimal.New(9999999999, -MoneyPlaces)

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// NonNegativeAmount validates that an amount is zero or greater.
func NonNegativeAmount(paramName string, d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is negative", d.StringFixed(MoneyPlaces)))
	}
	return rounded(paramName, d)
}

// PositiveAmount validates that an amount is strictly greater than zero.
func PositiveAmount(paramName string, d decimal.Decimal) (decimal.Decimal, error) {
	if !d.IsPositive() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(paramName,
			fmt.Errorf("%s is not greater than 0", d.StringFixed(MoneyPlaces)))
	}
	return rounded(paramName, d)
}

// WithinMoneyRange reports an out-of-range error when |d| exceeds MaxAmount.
func WithinMoneyRange(paramName string, d decimal.Decimal) error {
	if d.Abs().GreaterThan(MaxAmount) {
		return errs.NewValueIsOutOfRangeError(paramName, d.String(),
			MaxAmount.Neg().StringFixed(MoneyPlaces), MaxAmount.StringFixed(MoneyPlaces))
	}
	return nil
}

func rounded(paramName string, d decimal.Decimal) (decimal.Decimal, error) {
	v := RoundMoney(d)
	if err := WithinMoneyRange(paramName, v); err != nil {
		return decimal.Zero, err
	}
	return v, nil
}
