package queries

import (
	"context"

	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetJobOrderItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetJobOrderItemsQueryHandler(db *gorm.DB) GetJobOrderItemsQueryHandler {
	return GetJobOrderItemsQueryHandler{db: db}
}

func (h GetJobOrderItemsQueryHandler) Handle(ctx context.Context, query GetJobOrderItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveOrder(ctx, h.db, query.JobOrderID()); err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, h.db, []int64{query.JobOrderID()})
	if err != nil {
		return nil, err
	}
	if list := items[query.JobOrderID()]; list != nil {
		return list, nil
	}
	return []ItemView{}, nil
}

type GetJobOrderMeasurementsQueryHandler struct {
	db *gorm.DB
}

func NewGetJobOrderMeasurementsQueryHandler(db *gorm.DB) GetJobOrderMeasurementsQueryHandler {
	return GetJobOrderMeasurementsQueryHandler{db: db}
}

func (h GetJobOrderMeasurementsQueryHandler) Handle(
	ctx context.Context,
	query GetJobOrderMeasurementsQuery,
) ([]MeasurementView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := requireActiveOrder(ctx, h.db, query.JobOrderID()); err != nil {
		return nil, err
	}

	measurements, err := loadMeasurements(ctx, h.db, []int64{query.JobOrderID()})
	if err != nil {
		return nil, err
	}
	if list := measurements[query.JobOrderID()]; list != nil {
		return list, nil
	}
	return []MeasurementView{}, nil
}

func requireActiveOrder(ctx context.Context, db *gorm.DB, id int64) error {
	var count int64
	err := db.WithContext(ctx).
		Table("job_orders").
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("job_order", id)
	}
	return nil
}
