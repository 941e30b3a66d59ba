package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetRecentJobOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetRecentJobOrdersQueryHandler(db *gorm.DB) GetRecentJobOrdersQueryHandler {
	return GetRecentJobOrdersQueryHandler{db: db}
}

func (h GetRecentJobOrdersQueryHandler) Handle(ctx context.Context, query GetRecentJobOrdersQuery) ([]JobOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findJobOrders(ctx, h.db, JobOrderFilter{DateField: ByCreatedAt, Limit: query.Limit()})
}
