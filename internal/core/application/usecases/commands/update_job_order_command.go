package commands

import (
	"errors"
	"math"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrUpdateJobOrderCommandIsNotConstructed = errors.New(
	"UpdateJobOrderCommand must be created via NewUpdateJobOrderCommand constructor",
)

// UpdateJobOrderCommand is a partial update of an active order. Only the
// fields set in the revision change; child collections change only when
// their Replacement is present.
type UpdateJobOrderCommand struct { //nolint:recvcheck //using for validation
	jobOrderID   int64
	revision     order.Revision
	items        Replacement[ItemInput]
	measurements Replacement[MeasurementInput]

	guard guard.ConstructorGuard
}

func NewUpdateJobOrderCommand(
	jobOrderID int64,
	revision order.Revision,
	items Replacement[ItemInput],
	measurements Replacement[MeasurementInput],
) (UpdateJobOrderCommand, error) {
	cmd := UpdateJobOrderCommand{guard: guard.NewConstructorGuard()}

	var methodErr error
	if revision.PaymentMethod != nil {
		methodErr = revision.PaymentMethod.Validate()
	}

	if err := errors.Join(
		cmd.setJobOrderID(jobOrderID),
		validateStatus(revision.Status),
		methodErr,
	); err != nil {
		return UpdateJobOrderCommand{}, err
	}

	cmd.revision = revision
	cmd.items = items
	cmd.measurements = measurements
	return cmd, nil
}

func (c UpdateJobOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobOrderCommandIsNotConstructed)
}

func (c UpdateJobOrderCommand) JobOrderID() int64 { return c.jobOrderID }

func (c UpdateJobOrderCommand) Revision() order.Revision { return c.revision }

func (c UpdateJobOrderCommand) Items() Replacement[ItemInput] { return c.items }

func (c UpdateJobOrderCommand) Measurements() Replacement[MeasurementInput] { return c.measurements }

func (c *UpdateJobOrderCommand) setJobOrderID(id int64) error {
	if err := validateJobOrderID(id); err != nil {
		return err
	}
	c.jobOrderID = id
	return nil
}

func validateJobOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("job_order_id", id, 1, int64(math.MaxInt64))
	}
	return nil
}
