package commands

import (
	"errors"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSettleJobOrderDeliveryCommandIsNotConstructed = errors.New(
	"SettleJobOrderDeliveryCommand must be created via NewSettleJobOrderDeliveryCommand constructor",
)

// SettleJobOrderDeliveryCommand records money received at handover and,
// optionally, a new status. Both parts are optional.
type SettleJobOrderDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobOrderID int64
	received   *decimal.Decimal
	status     *order.Status

	guard guard.ConstructorGuard
}

func NewSettleJobOrderDeliveryCommand(
	jobOrderID int64,
	received *decimal.Decimal,
	status *order.Status,
) (SettleJobOrderDeliveryCommand, error) {
	if err := errors.Join(validateJobOrderID(jobOrderID), validateStatus(status)); err != nil {
		return SettleJobOrderDeliveryCommand{}, err
	}

	return SettleJobOrderDeliveryCommand{
		jobOrderID: jobOrderID,
		received:   received,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SettleJobOrderDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSettleJobOrderDeliveryCommandIsNotConstructed)
}

func (c SettleJobOrderDeliveryCommand) JobOrderID() int64 { return c.jobOrderID }

func (c SettleJobOrderDeliveryCommand) Received() *decimal.Decimal { return c.received }

func (c SettleJobOrderDeliveryCommand) Status() *order.Status { return c.status }
