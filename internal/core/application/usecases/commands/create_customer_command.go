package commands

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer under the next customer code.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	data CustomerData

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(data CustomerData) (CreateCustomerCommand, error) {
	if err := validateCustomerData(data); err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{data: data, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Data() CustomerData { return c.data }
