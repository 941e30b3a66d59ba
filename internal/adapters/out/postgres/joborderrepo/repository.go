package joborderrepo

import (
	"context"
	"errors"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobOrderRepository implements ports.JobOrderRepository using GORM.
// It must be handed a transaction so that the parent row and its children
// are written atomically.
type GormJobOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

func NewGormJobOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormJobOrderRepository {
	return &GormJobOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order, then its items and measurements, and assigns the
// generated ids back onto the aggregate.
func (r *GormJobOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return r.translate(err, dto)
	}
	aggregate.AssignID(dto.ID)

	if err := r.insertItems(ctx, aggregate); err != nil {
		return err
	}
	if err := r.insertMeasurements(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate("job_order", aggregate.ID(), aggregate)
	return nil
}

// Update writes every parent column. Replaced collections lose their active
// rows and receive the aggregate's collection in their place.
func (r *GormJobOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&JobOrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return r.translate(result.Error, dto)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if aggregate.ItemsReplaced() {
		if err := r.db.WithContext(ctx).
			Where("job_order_id = ? AND is_active = ?", dto.ID, true).
			Delete(&JobOrderItemDTO{}).Error; err != nil {
			return err
		}
		if err := r.insertItems(ctx, aggregate); err != nil {
			return err
		}
	}

	if aggregate.MeasurementsReplaced() {
		if err := r.db.WithContext(ctx).
			Where("job_order_id = ? AND is_active = ?", dto.ID, true).
			Delete(&JobOrderMeasurementDTO{}).Error; err != nil {
			return err
		}
		if err := r.insertMeasurements(ctx, aggregate); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate("job_order", aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active order with its active items and measurements.
func (r *GormJobOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	activeOnly := func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order("id")
	}

	var dto JobOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", activeOnly).
		Preload("Measurements", activeOnly).
		First(&dto, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job_order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormJobOrderRepository) insertItems(ctx context.Context, aggregate *order.Order) error {
	items := itemsFromDomain(aggregate.ID(), aggregate.Items())
	if len(items) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return pgerr.Translate(err, "job_order_items", nil)
	}
	for i, item := range aggregate.Items() {
		item.AssignID(items[i].ID)
	}
	return nil
}

func (r *GormJobOrderRepository) insertMeasurements(ctx context.Context, aggregate *order.Order) error {
	measurements := measurementsFromDomain(aggregate.ID(), aggregate.Measurements())
	if len(measurements) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(&measurements).Error; err != nil {
		return pgerr.Translate(err, "job_order_measurements", nil)
	}
	for i, m := range aggregate.Measurements() {
		m.AssignID(measurements[i].ID)
	}
	return nil
}

func (r *GormJobOrderRepository) translate(err error, dto JobOrderDTO) error {
	if pgerr.IsForeignKeyViolation(err) {
		return errs.NewObjectNotFoundErrorWithCause("customer_id", dto.CustomerID, err)
	}
	return pgerr.Translate(err, "job_order_number", dto.JobOrderNumber)
}
