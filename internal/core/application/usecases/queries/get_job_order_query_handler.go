package queries

import (
	"context"

	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobOrderQueryHandler reads a job order with its customer's name, phone
// and code and its active items and measurements.
type GetJobOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetJobOrderQueryHandler(db *gorm.DB) GetJobOrderQueryHandler {
	return GetJobOrderQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for unknown and soft-deleted orders.
func (h GetJobOrderQueryHandler) Handle(ctx context.Context, query GetJobOrderQuery) (JobOrderView, error) {
	if err := query.Validate(); err != nil {
		return JobOrderView{}, err
	}

	views, err := findByID(ctx, h.db, query.JobOrderID())
	if err != nil {
		return JobOrderView{}, err
	}
	if len(views) == 0 {
		return JobOrderView{}, errs.NewObjectNotFoundError("job_order", query.JobOrderID())
	}
	return views[0], nil
}

func findByID(ctx context.Context, db *gorm.DB, id int64) ([]JobOrderView, error) {
	var rows []jobOrderRow
	err := activeJobOrders(ctx, db).
		Select(jobOrderColumns).
		Where("jo.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return assembleViews(ctx, db, rows)
}
