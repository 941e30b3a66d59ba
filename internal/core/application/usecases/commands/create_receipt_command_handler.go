package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/model/receipt"
)

// CreateReceiptCommandHandler issues the next RCP number for a payment on an
// active order. The order balance is not changed by a receipt.
type CreateReceiptCommandHandler struct {
	uowFactory ReceiptUoWFactory
	allocator  IdentifierAllocator
	now        Clock
}

func NewCreateReceiptCommandHandler(uowFactory ReceiptUoWFactory, allocator IdentifierAllocator, now Clock) CreateReceiptCommandHandler {
	if now == nil {
		now = utcNow
	}
	return CreateReceiptCommandHandler{uowFactory: uowFactory, allocator: allocator, now: now}
}

func (h CreateReceiptCommandHandler) Handle(ctx context.Context, cmd CreateReceiptCommand) (*receipt.Receipt, error) {
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

	jobOrder, err := uow.JobOrderRepository().Get(ctx, cmd.JobOrderID())
	if err != nil {
		return nil, err
	}

	number, err := h.allocator.Allocate(ctx, uow.IdentifierStore(), identifier.ReceiptNumber)
	if err != nil {
		return nil, err
	}

	date := h.now().Truncate(24 * time.Hour)
	if cmd.Date() != nil {
		date = *cmd.Date()
	}

	created, err := receipt.NewReceipt(number, jobOrder, date, cmd.Amount(), cmd.Remarks())
	if err != nil {
		return nil, err
	}

	if err = uow.ReceiptRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
