package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListJobOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListJobOrdersQueryHandler(db *gorm.DB) ListJobOrdersQueryHandler {
	return ListJobOrdersQueryHandler{db: db}
}

func (h ListJobOrdersQueryHandler) Handle(ctx context.Context, query ListJobOrdersQuery) ([]JobOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return findJobOrders(ctx, h.db, query.Filter())
}
