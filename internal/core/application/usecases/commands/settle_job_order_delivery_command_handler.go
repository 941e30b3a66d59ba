package commands

import (
	"context"
)

// SettleJobOrderDeliveryCommandHandler applies the delivery balance rule:
// balance = total - advance - received.
type SettleJobOrderDeliveryCommandHandler struct {
	uowFactory JobOrderUoWFactory
}

func NewSettleJobOrderDeliveryCommandHandler(uowFactory JobOrderUoWFactory) SettleJobOrderDeliveryCommandHandler {
	return SettleJobOrderDeliveryCommandHandler{uowFactory: uowFactory}
}

func (h SettleJobOrderDeliveryCommandHandler) Handle(ctx context.Context, cmd SettleJobOrderDeliveryCommand) error {
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

	if err = jobOrder.SettleDelivery(cmd.Received(), cmd.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, jobOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
