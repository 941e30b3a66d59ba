package customerrepo

import (
	"context"
	"errors"

	"atelier/internal/adapters/out/postgres/pgerr"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(kind string, id int64, aggregate any)
}

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{db: db, tracker: tracker}
}

// Add inserts the customer and assigns the generated id.
// A taken customer code yields errs.ValueIsDuplicatedError.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "customer_id", dto.CustomerCode)
	}

	aggregate.AssignID(dto.ID)
	r.tracker.TrackAggregate("customer", dto.ID, aggregate)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer_id", id)
		}
		return nil, err
	}

	return toDomain(dto), nil
}
