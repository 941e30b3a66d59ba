// Package services provides domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - IdentifierAllocator: hands out customer codes, order numbers, SKUs, sale
//     numbers and receipt numbers using atomic sequences or bounded random retry
package services
