package ports

import (
	"context"

	"atelier/internal/core/domain/model/customer"
)

type CustomerRepository interface {
	// Add persists a new customer and assigns its generated id.
	Add(ctx context.Context, c *customer.Customer) error

	// Get retrieves a customer by internal id.
	Get(ctx context.Context, id int64) (*customer.Customer, error)
}
