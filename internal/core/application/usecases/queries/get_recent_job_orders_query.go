package queries

import (
	"errors"

	"atelier/internal/pkg/guard"
)

// DefaultRecentLimit is the number of orders returned when no limit is given.
const DefaultRecentLimit = 10

var ErrGetRecentJobOrdersQueryIsNotConstructed = errors.New(
	"GetRecentJobOrdersQuery must be created via NewGetRecentJobOrdersQuery constructor",
)

// GetRecentJobOrdersQuery reads the newest active orders.
type GetRecentJobOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentJobOrdersQuery creates the query. A limit below 1 means
// DefaultRecentLimit.
func NewGetRecentJobOrdersQuery(limit int) GetRecentJobOrdersQuery {
	if limit < 1 {
		limit = DefaultRecentLimit
	}
	return GetRecentJobOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

func (q GetRecentJobOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentJobOrdersQueryIsNotConstructed)
}

func (q GetRecentJobOrdersQuery) Limit() int { return q.limit }
