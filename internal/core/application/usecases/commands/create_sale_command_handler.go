package commands

import (
	"context"

	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/model/sale"
)

type CreateSaleCommandHandler struct {
	uowFactory SaleUoWFactory
	allocator  IdentifierAllocator
	now        Clock
}

func NewCreateSaleCommandHandler(uowFactory SaleUoWFactory, allocator IdentifierAllocator, now Clock) CreateSaleCommandHandler {
	if now == nil {
		now = utcNow
	}
	return CreateSaleCommandHandler{uowFactory: uowFactory, allocator: allocator, now: now}
}

func (h CreateSaleCommandHandler) Handle(ctx context.Context, cmd CreateSaleCommand) (*sale.Sale, error) {
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

	number, err := h.allocator.Allocate(ctx, uow.IdentifierStore(), identifier.SaleNumber)
	if err != nil {
		return nil, err
	}

	date := h.now()
	if cmd.Date() != nil {
		date = *cmd.Date()
	}

	created, err := sale.NewSale(
		number, cmd.CustomerName(),
		cmd.Amount(), cmd.TotalAmount(),
		cmd.PaymentMethod(), cmd.Status(), cmd.Notes(),
		date,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.SaleRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
