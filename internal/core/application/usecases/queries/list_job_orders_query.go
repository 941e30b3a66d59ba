package queries

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var ErrListJobOrdersQueryIsNotConstructed = errors.New(
	"ListJobOrdersQuery must be created via NewListJobOrdersQuery constructor",
)

// ListJobOrdersQuery lists active orders matching a filter, newest first.
// The filter's DateField decides between the general list and the
// deliveries view.
type ListJobOrdersQuery struct {
	filter JobOrderFilter

	guard guard.ConstructorGuard
}

func NewListJobOrdersQuery(filter JobOrderFilter) ListJobOrdersQuery {
	return ListJobOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ListJobOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListJobOrdersQueryIsNotConstructed)
}

func (q ListJobOrdersQuery) Filter() JobOrderFilter { return q.filter }
