package commands

import (
	"errors"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrUpdateJobOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateJobOrderStatusCommand must be created via NewUpdateJobOrderStatusCommand constructor",
)

// UpdateJobOrderStatusCommand moves an order to any of the four statuses.
type UpdateJobOrderStatusCommand struct { //nolint:recvcheck //using for validation
	jobOrderID int64
	status     order.Status

	guard guard.ConstructorGuard
}

func NewUpdateJobOrderStatusCommand(jobOrderID int64, status string) (UpdateJobOrderStatusCommand, error) {
	cmd := UpdateJobOrderStatusCommand{guard: guard.NewConstructorGuard()}

	var statusErr error
	if status == "" {
		statusErr = errs.NewValueIsRequiredError("status")
	} else {
		cmd.status, statusErr = order.ParseStatus(status)
	}

	if err := errors.Join(validateJobOrderID(jobOrderID), statusErr); err != nil {
		return UpdateJobOrderStatusCommand{}, err
	}

	cmd.jobOrderID = jobOrderID
	return cmd, nil
}

func (c UpdateJobOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobOrderStatusCommandIsNotConstructed)
}

func (c UpdateJobOrderStatusCommand) JobOrderID() int64 { return c.jobOrderID }

func (c UpdateJobOrderStatusCommand) Status() order.Status { return c.status }
