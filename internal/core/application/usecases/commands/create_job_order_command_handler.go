package commands

import (
	"context"

	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/domain/model/order"
)

// DefaultDeliveryLeadDays is used when no delivery date is sent.
const DefaultDeliveryLeadDays = 7

// CreateJobOrderCommandHandler creates an order, its children and, when given
// inline, its customer in one transaction. The order number is drawn from the
// same transaction, so a failed create never consumes a number.
type CreateJobOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	allocator  IdentifierAllocator
	replacer   ChildCollectionReplacer
	leadDays   int
	now        Clock
}

// NewCreateJobOrderCommandHandler creates the handler. leadDays below 1 falls
// back to DefaultDeliveryLeadDays; a nil clock uses the UTC wall clock.
func NewCreateJobOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	allocator IdentifierAllocator,
	leadDays int,
	now Clock,
) CreateJobOrderCommandHandler {
	if leadDays < 1 {
		leadDays = DefaultDeliveryLeadDays
	}
	if now == nil {
		now = utcNow
	}
	return CreateJobOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
		leadDays:   leadDays,
		now:        now,
	}
}

// Handle creates the order and returns its id.
func (h CreateJobOrderCommandHandler) Handle(ctx context.Context, cmd CreateJobOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerID, err := h.resolveCustomer(ctx, uow, cmd)
	if err != nil {
		return 0, err
	}

	number, err := h.allocator.Allocate(ctx, uow.IdentifierStore(), identifier.OrderNumber)
	if err != nil {
		return 0, err
	}

	deliveryDate := h.now().AddDate(0, 0, h.leadDays)
	if cmd.DeliveryDate() != nil {
		deliveryDate = *cmd.DeliveryDate()
	}

	jobOrder, err := order.NewOrder(number, customerID, deliveryDate, cmd.Terms(), cmd.Remarks())
	if err != nil {
		return 0, err
	}
	if status := cmd.Status(); status != nil {
		if err = jobOrder.SetStatus(*status); err != nil {
			return 0, err
		}
	}

	if err = h.replacer.Replace(ctx, uow.MaterialRepository(), jobOrder, cmd.Items(), cmd.Measurements()); err != nil {
		return 0, err
	}

	if err = uow.JobOrderRepository().Add(ctx, jobOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return jobOrder.ID(), nil
}

func (h CreateJobOrderCommandHandler) resolveCustomer(ctx context.Context, uow OrderingUoW, cmd CreateJobOrderCommand) (int64, error) {
	if id := cmd.CustomerID(); id != nil {
		existing, err := uow.CustomerRepository().Get(ctx, *id)
		if err != nil {
			return 0, err
		}
		return existing.ID(), nil
	}

	data := cmd.CustomerData()
	code, err := h.allocator.Allocate(ctx, uow.IdentifierStore(), identifier.CustomerCode)
	if err != nil {
		return 0, err
	}

	created, err := customer.NewCustomer(code, data.Name, data.Phone, data.Balance, data.Points)
	if err != nil {
		return 0, err
	}
	if err = uow.CustomerRepository().Add(ctx, created); err != nil {
		return 0, err
	}
	return created.ID(), nil
}
