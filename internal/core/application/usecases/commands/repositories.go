// Package commands contains the operations that change state. Every handler
// follows the same shape: validate the command, open a unit of work, load or
// build aggregates, persist them and commit. A deferred Rollback releases the
// transaction on every early return.
package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	JobOrderRepoFactory interface {
		JobOrderRepository() ports.JobOrderRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	MaterialRepoFactory interface {
		MaterialRepository() ports.MaterialRepository
	}

	ReceiptRepoFactory interface {
		ReceiptRepository() ports.ReceiptRepository
	}

	SaleRepoFactory interface {
		SaleRepository() ports.SaleRepository
	}

	IdentifierStoreFactory interface {
		IdentifierStore() ports.IdentifierStore
	}

	// JobOrderUoW serves operations on an existing order only.
	JobOrderUoW interface {
		TxManager
		JobOrderRepoFactory
	}

	JobOrderUoWFactory interface {
		Create() JobOrderUoW
	}

	// OrderingUoW serves order creation and full updates: the order, an inline
	// customer, material lookups for children and identifier counters share
	// one transaction.
	OrderingUoW interface {
		TxManager
		JobOrderRepoFactory
		CustomerRepoFactory
		MaterialRepoFactory
		IdentifierStoreFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
		IdentifierStoreFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	MaterialUoW interface {
		TxManager
		MaterialRepoFactory
		IdentifierStoreFactory
	}

	MaterialUoWFactory interface {
		Create() MaterialUoW
	}

	ReceiptUoW interface {
		TxManager
		JobOrderRepoFactory
		ReceiptRepoFactory
		IdentifierStoreFactory
	}

	ReceiptUoWFactory interface {
		Create() ReceiptUoW
	}

	SaleUoW interface {
		TxManager
		SaleRepoFactory
		IdentifierStoreFactory
	}

	SaleUoWFactory interface {
		Create() SaleUoW
	}
)

// IdentifierAllocator hands out display identifiers inside a transaction.
// Implemented by services.IdentifierAllocator.
type IdentifierAllocator interface {
	Allocate(ctx context.Context, store ports.IdentifierStore, kind identifier.Kind) (string, error)
}

// Clock returns the current time. Handlers default to time.Now in UTC.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
