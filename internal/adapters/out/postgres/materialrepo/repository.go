package materialrepo

import (
	"context"
	"errors"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/core/domain/model/material"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

// GormMaterialRepository implements ports.MaterialRepository using GORM.
type GormMaterialRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormMaterialRepository(db *gorm.DB, tracker aggregateTracker) *GormMaterialRepository {
	return &GormMaterialRepository{db: db, tracker: tracker}
}

func (r *GormMaterialRepository) Add(ctx context.Context, aggregate *material.Material) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "sku", dto.SKU)
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate("material", dto.ID, aggregate)
	return nil
}

// Get returns the material by id. Inactive materials are returned too.
func (r *GormMaterialRepository) Get(ctx context.Context, id int64) (*material.Material, error) {
	var dto MaterialDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("material", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
