package commands

import (
	"context"
)

type ToggleJobOrderBlockCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

func NewToggleJobOrderBlockCommandHandler(uowFactory JobOrderUoWFactory) ToggleJobOrderBlockCommandHandler {
	return ToggleJobOrderBlockCommandHandler{uowFactory: uowFactory}
}

// Handle flips the blocked flag and returns its new value.
func (h ToggleJobOrderBlockCommandHandler) Handle(ctx context.Context, cmd ToggleJobOrderBlockCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.JobOrderRepository()
	jobOrder, err := repo.Get(ctx, cmd.JobOrderID())
	if err != nil {
		return false, err
	}

	blocked := jobOrder.ToggleBlock()

	if err = repo.Update(ctx, jobOrder); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return blocked, nil
}
