package queries

import (
	"context"

	"atelier/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetJobOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetJobOrderStatsQueryHandler(db *gorm.DB) GetJobOrderStatsQueryHandler {
	return GetJobOrderStatsQueryHandler{db: db}
}

type statsRow struct {
	TotalOrders  int64
	Pending      int64
	InProgress   int64
	Completed    int64
	Delivered    int64
	TotalRevenue decimal.NullDecimal
	TotalBalance decimal.NullDecimal
}

// Handle aggregates in a single statement over the filtered set.
func (h GetJobOrderStatsQueryHandler) Handle(ctx context.Context, query GetJobOrderStatsQuery) (JobOrderStats, error) {
	if err := query.Validate(); err != nil {
		return JobOrderStats{}, err
	}

	var row statsRow
	err := query.Filter().apply(activeJobOrders(ctx, h.db)).
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(CASE WHEN jo.status = ? THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN jo.status = ? THEN 1 ELSE 0 END), 0) AS in_progress,
			COALESCE(SUM(CASE WHEN jo.status = ? THEN 1 ELSE 0 END), 0) AS completed,
			COALESCE(SUM(CASE WHEN jo.status = ? THEN 1 ELSE 0 END), 0) AS delivered,
			SUM(jo.total_amount) AS total_revenue,
			SUM(jo.balance_amount) AS total_balance`,
			string(order.Pending), string(order.InProgress), string(order.Completed), string(order.Delivered)).
		Scan(&row).Error
	if err != nil {
		return JobOrderStats{}, err
	}

	stats := JobOrderStats{
		TotalOrders:  row.TotalOrders,
		Pending:      row.Pending,
		InProgress:   row.InProgress,
		Completed:    row.Completed,
		Delivered:    row.Delivered,
		TotalRevenue: decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	if row.TotalRevenue.Valid {
		stats.TotalRevenue = row.TotalRevenue.Decimal
	}
	if row.TotalBalance.Valid {
		stats.TotalBalance = row.TotalBalance.Decimal
	}
	return stats, nil
}
