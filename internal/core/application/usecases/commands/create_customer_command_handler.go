package commands

import (
	"context"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/identifier"
)

type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	allocator  IdentifierAllocator
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory, allocator IdentifierAllocator) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory, allocator: allocator}
}

// Handle allocates the customer code and stores the customer.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	code, err := h.allocator.Allocate(ctx, uow.IdentifierStore(), identifier.CustomerCode)
	if err != nil {
		return nil, err
	}

	data := cmd.Data()
	created, err := customer.NewCustomer(code, data.Name, data.Phone, data.Balance, data.Points)
	if err != nil {
		return nil, err
	}

	if err = uow.CustomerRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
