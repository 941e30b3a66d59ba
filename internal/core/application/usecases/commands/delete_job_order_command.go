package commands

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrDeleteJobOrderCommandIsNotConstructed = errors.New(
	"DeleteJobOrderCommand must be created via NewDeleteJobOrderCommand constructor",
)

// DeleteJobOrderCommand soft-deletes an order. Its children stay active.
type DeleteJobOrderCommand struct { //nolint:recvcheck //using for validation
	jobOrderID int64

	guard guard.ConstructorGuard
}

func NewDeleteJobOrderCommand(jobOrderID int64) (DeleteJobOrderCommand, error) {
	if err := validateJobOrderID(jobOrderID); err != nil {
		return DeleteJobOrderCommand{}, err
	}
	return DeleteJobOrderCommand{jobOrderID: jobOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteJobOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteJobOrderCommandIsNotConstructed)
}

func (c DeleteJobOrderCommand) JobOrderID() int64 { return c.jobOrderID }
