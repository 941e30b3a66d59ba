package commands

import (
	"context"
)

type DeleteJobOrderCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

func NewDeleteJobOrderCommandHandler(uowFactory JobOrderUoWFactory) DeleteJobOrderCommandHandler {
	return DeleteJobOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deactivates the order. Deleting an already deleted order reports
// errs.ObjectNotFoundError.
func (h DeleteJobOrderCommandHandler) Handle(ctx context.Context, cmd DeleteJobOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JobOrderRepository()
	jobOrder, err := repo.Get(ctx, cmd.JobOrderID())
	if err != nil {
		return err
	}

	jobOrder.Deactivate()

	if err = repo.Update(ctx, jobOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
