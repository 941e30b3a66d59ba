package commands

import (
	"context"
)

// UpdateJobOrderCommandHandler applies a partial update and replaces the
// child collections that were sent, all in one transaction.
type UpdateJobOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	replacer   ChildCollectionReplacer
}

func NewUpdateJobOrderCommandHandler(uowFactory OrderingUoWFactory) UpdateJobOrderCommandHandler {
	return UpdateJobOrderCommandHandler{uowFactory: uowFactory}
}

// Handle loads the active order, revises it and persists the result. Any
// failure leaves the stored order and its children unchanged.
func (h UpdateJobOrderCommandHandler) Handle(ctx context.Context, cmd UpdateJobOrderCommand) error {
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

	if err = jobOrder.Revise(cmd.Revision()); err != nil {
		return err
	}

	if err = h.replacer.Replace(ctx, uow.MaterialRepository(), jobOrder, cmd.Items(), cmd.Measurements()); err != nil {
		return err
	}

	if err = repo.Update(ctx, jobOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
