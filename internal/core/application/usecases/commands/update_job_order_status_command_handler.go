package commands

import (
	"context"
)

type UpdateJobOrderStatusCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

func NewUpdateJobOrderStatusCommandHandler(uowFactory JobOrderUoWFactory) UpdateJobOrderStatusCommandHandler {
	return UpdateJobOrderStatusCommandHandler{uowFactory: uowFactory}
}

func (h UpdateJobOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateJobOrderStatusCommand) error {
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

	if err = jobOrder.SetStatus(cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, jobOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
