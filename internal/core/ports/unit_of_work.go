// Package ports defines the repository and transaction contracts of the
// job-order domain. Adapters implement them; application handlers depend on
// them only.
package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// JobOrderRepository returns a JobOrderRepository bound to the current transaction.
	JobOrderRepository() JobOrderRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// MaterialRepository returns a MaterialRepository bound to the current transaction.
	MaterialRepository() MaterialRepository

	// ReceiptRepository returns a ReceiptRepository bound to the current transaction.
	ReceiptRepository() ReceiptRepository

	// SaleRepository returns a SaleRepository bound to the current transaction.
	SaleRepository() SaleRepository

	// IdentifierStore returns the identifier counters bound to the current transaction.
	IdentifierStore() IdentifierStore
}
