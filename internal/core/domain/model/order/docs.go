// Package order provides the job order aggregate: a customer commitment with
// totals, a payment split across cash and card, a derived balance and two owned
// child collections (items and measurements).
//
// The package includes:
//   - Order: the aggregate root managing amounts, status, flags and children
//   - Status: the unconstrained lifecycle enum (pending, in_progress, completed, delivered)
//   - PaymentMethod and AllocatePayment: the closed payment variant and its resolver
//   - BalanceAtCreation and BalanceAtDelivery: the two balance formulas
//   - Item and Measurement: child entities that reference catalog materials
//
// Key business rules:
//   - Balance is always derived and never accepted from callers
//   - cash_amount + card_amount equals total_amount once payment is resolved
//   - Any status may be set from any other; blocked is independent of status
//   - Child collections are replaced as a whole, never patched
package order
