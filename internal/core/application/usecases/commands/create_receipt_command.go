package commands

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateReceiptCommandIsNotConstructed = errors.New(
	"CreateReceiptCommand must be created via NewCreateReceiptCommand constructor",
)

// CreateReceiptCommand records a payment against a job order.
type CreateReceiptCommand struct { //nolint:recvcheck //using for validation
	jobOrderID int64
	date       *time.Time
	amount     decimal.Decimal
	remarks    string

	guard guard.ConstructorGuard
}

// NewCreateReceiptCommand checks the amount up front; the balance limit is
// checked against the stored order when the command is handled. A nil date
// means today.
func NewCreateReceiptCommand(jobOrderID int64, date *time.Time, amount decimal.Decimal, remarks string) (CreateReceiptCommand, error) {
	_, amountErr := kernel.PositiveAmount("amount", amount)
	if err := errors.Join(validateJobOrderID(jobOrderID), amountErr); err != nil {
		return CreateReceiptCommand{}, err
	}

	return CreateReceiptCommand{
		jobOrderID: jobOrderID,
		date:       date,
		amount:     amount,
		remarks:    remarks,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrCreateReceiptCommandIsNotConstructed)
}

func (c CreateReceiptCommand) JobOrderID() int64 { return c.jobOrderID }

func (c CreateReceiptCommand) Date() *time.Time { return c.date }

func (c CreateReceiptCommand) Amount() decimal.Decimal { return c.amount }

func (c CreateReceiptCommand) Remarks() string { return c.remarks }
