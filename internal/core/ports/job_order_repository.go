package ports

import (
	"context"

	"atelier/internal/core/domain/model/order"
)

type JobOrderRepository interface {
	// Add persists a new order together with its items and measurements and
	// assigns the generated ids back onto the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the parent row. When ItemsReplaced or MeasurementsReplaced
	// is set, the active rows of that collection are hard-deleted and the
	// aggregate's collection is inserted in their place.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an active order with its active children.
	// Returns errs.ObjectNotFoundError for unknown or soft-deleted orders.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
