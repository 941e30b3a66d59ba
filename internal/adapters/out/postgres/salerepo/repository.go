package salerepo

import (
	"context"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/core/domain/model/sale"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

// GormSaleRepository implements ports.SaleRepository using GORM.
type GormSaleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormSaleRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleRepository {
	return &GormSaleRepository{db: db, tracker: tracker}
}

func (r *GormSaleRepository) Add(ctx context.Context, aggregate *sale.Sale) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "sale_number", dto.SaleNumber)
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate("sale", dto.ID, aggregate)
	return nil
}
