package queries

import (
	"errors"

	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetJobOrderStatsQueryIsNotConstructed = errors.New(
	"GetJobOrderStatsQuery must be created via NewGetJobOrderStatsQuery constructor",
)

// GetJobOrderStatsQuery summarizes the orders matched by a filter. The
// filter's limit is not applied.
type GetJobOrderStatsQuery struct {
	filter JobOrderFilter

	guard guard.ConstructorGuard
}

func NewGetJobOrderStatsQuery(filter JobOrderFilter) GetJobOrderStatsQuery {
	filter.Limit = 0
	return GetJobOrderStatsQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q GetJobOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobOrderStatsQueryIsNotConstructed)
}

func (q GetJobOrderStatsQuery) Filter() JobOrderFilter { return q.filter }

// JobOrderStats counts orders per status and sums their totals and balances.
type JobOrderStats struct {
	TotalOrders  int64
	Pending      int64
	InProgress   int64
	Completed    int64
	Delivered    int64
	TotalRevenue decimal.Decimal
	TotalBalance decimal.Decimal
}
