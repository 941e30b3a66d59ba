package commands

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrToggleJobOrderBlockCommandIsNotConstructed = errors.New(
	"ToggleJobOrderBlockCommand must be created via NewToggleJobOrderBlockCommand constructor",
)

type ToggleJobOrderBlockCommand struct { //nolint:recvcheck //using for validation
	jobOrderID int64

	guard guard.ConstructorGuard
}

func NewToggleJobOrderBlockCommand(jobOrderID int64) (ToggleJobOrderBlockCommand, error) {
	if err := validateJobOrderID(jobOrderID); err != nil {
		return ToggleJobOrderBlockCommand{}, err
	}
	return ToggleJobOrderBlockCommand{jobOrderID: jobOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleJobOrderBlockCommand) Validate() error {
	return c.guard.Validate(ErrToggleJobOrderBlockCommandIsNotConstructed)
}

func (c ToggleJobOrderBlockCommand) JobOrderID() int64 { return c.jobOrderID }
