package receiptrepo

import (
	"context"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/core/domain/model/receipt"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

// GormReceiptRepository implements ports.ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormReceiptRepository(db *gorm.DB, tracker aggregateTracker) *GormReceiptRepository {
	return &GormReceiptRepository{db: db, tracker: tracker}
}

func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "receipt_number", dto.ReceiptNumber)
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate("receipt", dto.ID, aggregate)
	return nil
}
