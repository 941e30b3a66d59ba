// Package identifierstore keeps the counters behind sequence identifiers in the
// identifier_sequences table and answers collision checks for random ones.
package identifierstore

import (
	"context"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/identifier"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SequenceDTO is one named counter. Value is the last number handed out.
type SequenceDTO struct {
	Name      string `gorm:"primaryKey;size:50"`
	Value     int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (SequenceDTO) TableName() string {
	return "identifier_sequences"
}

type column struct {
	table string
	name  string
}

var columns = map[identifier.Kind]column{
	identifier.CustomerCode:  {"customers", "customer_code"},
	identifier.OrderNumber:   {"job_orders", "job_order_number"},
	identifier.MaterialSKU:   {"materials", "sku"},
	identifier.SaleNumber:    {"sales", "sale_number"},
	identifier.ReceiptNumber: {"receipts", "receipt_number"},
}

// GormIdentifierStore implements ports.IdentifierStore. Bound to a
// transaction, the incremented counter row stays locked until commit or
// rollback, which serializes concurrent allocators of the same kind.
type GormIdentifierStore struct {
	db *gorm.DB
}

func NewGormIdentifierStore(db *gorm.DB) *GormIdentifierStore {
	return &GormIdentifierStore{db: db}
}

// NextValue increments the counter of kind and returns the new value. A
// missing counter is created from the rows that already exist.
func (s *GormIdentifierStore) NextValue(ctx context.Context, kind identifier.Kind) (int64, error) {
	if err := kind.Validate(); err != nil {
		return 0, err
	}

	bumped, err := s.increment(ctx, kind)
	if err != nil {
		return 0, err
	}

	if !bumped {
		if err = s.seed(ctx, kind); err != nil {
			return 0, err
		}
		if bumped, err = s.increment(ctx, kind); err != nil {
			return 0, err
		}
		if !bumped {
			return 0, fmt.Errorf("sequence %s: counter row missing after seeding", kind)
		}
	}

	var seq SequenceDTO
	if err = s.db.WithContext(ctx).First(&seq, "name = ?", string(kind)).Error; err != nil {
		return 0, fmt.Errorf("sequence %s: %w", kind, err)
	}
	return seq.Value, nil
}

// Exists reports whether value is already stored for kind.
func (s *GormIdentifierStore) Exists(ctx context.Context, kind identifier.Kind, value string) (bool, error) {
	col, ok := columns[kind]
	if !ok {
		return false, kind.Validate()
	}

	var count int64
	err := s.db.WithContext(ctx).
		Table(col.table).
		Where(fmt.Sprintf("%s = ?", col.name), value).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormIdentifierStore) increment(ctx context.Context, kind identifier.Kind) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&SequenceDTO{}).
		Where("name = ?", string(kind)).
		Updates(map[string]any{
			"value":      gorm.Expr("value + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("sequence %s: %w", kind, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// seed inserts the counter if absent. A concurrent seeder may win the insert;
// ON CONFLICT DO NOTHING makes the loser continue with the winner's row.
func (s *GormIdentifierStore) seed(ctx context.Context, kind identifier.Kind) error {
	start, err := s.seedValue(ctx, kind)
	if err != nil {
		return fmt.Errorf("seed %s: %w", kind, err)
	}

	row := SequenceDTO{Name: string(kind), Value: start, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&row).Error
}

func (s *GormIdentifierStore) seedValue(ctx context.Context, kind identifier.Kind) (int64, error) {
	col := columns[kind]
	db := s.db.WithContext(ctx)

	switch kind {
	case identifier.CustomerCode:
		var codes []string
		if err := db.Table(col.table).Pluck(col.name, &codes).Error; err != nil {
			return 0, err
		}
		return identifier.SeedFromCustomerCodes(codes), nil

	case identifier.OrderNumber:
		var count int64
		if err := db.Table(col.table).Count(&count).Error; err != nil {
			return 0, err
		}
		return identifier.SeedFromOrderCount(count), nil

	case identifier.ReceiptNumber:
		var latest []string
		if err := db.Table(col.table).Order("id DESC").Limit(1).Pluck(col.name, &latest).Error; err != nil {
			return 0, err
		}
		if len(latest) == 0 {
			return 0, nil
		}
		return identifier.SeedFromLatestReceipt(latest[0]), nil

	default:
		return 0, nil
	}
}
