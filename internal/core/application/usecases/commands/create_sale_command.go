package commands

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/sale"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateSaleCommandIsNotConstructed = errors.New(
	"CreateSaleCommand must be created via NewCreateSaleCommand constructor",
)

// CreateSaleCommand records a counter sale under a random SALE- number.
type CreateSaleCommand struct { //nolint:recvcheck //using for validation
	customerName string
	amount       decimal.Decimal
	totalAmount  decimal.Decimal
	method       sale.PaymentMethod
	status       string
	notes        string
	date         *time.Time

	guard guard.ConstructorGuard
}

func NewCreateSaleCommand(
	customerName string,
	amount, totalAmount decimal.Decimal,
	method, status, notes string,
	date *time.Time,
) (CreateSaleCommand, error) {
	cmd := CreateSaleCommand{
		customerName: strings.TrimSpace(customerName),
		amount:       amount,
		totalAmount:  totalAmount,
		status:       status,
		notes:        notes,
		date:         date,
		guard:        guard.NewConstructorGuard(),
	}

	var nameErr error
	if cmd.customerName == "" {
		nameErr = errs.NewValueIsRequiredError("customer_name")
	}
	_, amountErr := kernel.NonNegativeAmount("amount", amount)
	_, totalErr := kernel.NonNegativeAmount("total_amount", totalAmount)

	var methodErr error
	cmd.method, methodErr = sale.ParsePaymentMethod(method)

	if err := errors.Join(nameErr, amountErr, totalErr, methodErr); err != nil {
		return CreateSaleCommand{}, err
	}
	return cmd, nil
}

func (c CreateSaleCommand) Validate() error {
	return c.guard.Validate(ErrCreateSaleCommandIsNotConstructed)
}

func (c CreateSaleCommand) CustomerName() string { return c.customerName }

func (c CreateSaleCommand) Amount() decimal.Decimal { return c.amount }

func (c CreateSaleCommand) TotalAmount() decimal.Decimal { return c.totalAmount }

func (c CreateSaleCommand) PaymentMethod() sale.PaymentMethod { return c.method }

func (c CreateSaleCommand) Status() string { return c.status }

func (c CreateSaleCommand) Notes() string { return c.notes }

func (c CreateSaleCommand) Date() *time.Time { return c.date }
