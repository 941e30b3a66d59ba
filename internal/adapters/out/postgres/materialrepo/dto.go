// Package materialrepo persists catalog materials.
package materialrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/material"

	"github.com/shopspring/decimal"
)

// MaterialDTO is the row of the materials table.
type MaterialDTO struct {
	ID         int64           `gorm:"primaryKey;autoIncrement"`
	SKU        string          `gorm:"column:sku;size:20;not null;uniqueIndex"`
	Name       string          `gorm:"size:100;not null"`
	Dimensions DimensionsDTO   `gorm:"embedded"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	IsActive   bool            `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (MaterialDTO) TableName() string {
	return "materials"
}

// DimensionsDTO holds the six body measurements stored with a material.
type DimensionsDTO struct {
	Thool    decimal.Decimal `gorm:"column:thool;type:numeric(10,2);not null;default:0"`
	Kethet   decimal.Decimal `gorm:"column:kethet;type:numeric(10,2);not null;default:0"`
	ThoolKum decimal.Decimal `gorm:"column:thool_kum;type:numeric(10,2);not null;default:0"`
	ArdhFKum decimal.Decimal `gorm:"column:ardh_f_kum;type:numeric(10,2);not null;default:0"`
	Jamba    decimal.Decimal `gorm:"column:jamba;type:numeric(10,2);not null;default:0"`
	Ragab    decimal.Decimal `gorm:"column:ragab;type:numeric(10,2);not null;default:0"`
}

func fromDomain(m *material.Material) MaterialDTO {
	d := m.Measurements().Dimensions()
	return MaterialDTO{
		ID:   m.ID(),
		SKU:  m.SKU(),
		Name: m.Name(),
		Dimensions: DimensionsDTO{
			Thool:    d.Thool,
			Kethet:   d.Kethet,
			ThoolKum: d.ThoolKum,
			ArdhFKum: d.ArdhFKum,
			Jamba:    d.Jamba,
			Ragab:    d.Ragab,
		},
		Price:    m.Price(),
		IsActive: m.IsActive(),
	}
}

func toDomain(dto MaterialDTO) (*material.Material, error) {
	measurements, err := kernel.NewMeasurements(kernel.Dimensions{
		Thool:    dto.Dimensions.Thool,
		Kethet:   dto.Dimensions.Kethet,
		ThoolKum: dto.Dimensions.ThoolKum,
		ArdhFKum: dto.Dimensions.ArdhFKum,
		Jamba:    dto.Dimensions.Jamba,
		Ragab:    dto.Dimensions.Ragab,
	})
	if err != nil {
		return nil, err
	}

	return material.RestoreMaterial(dto.ID, dto.SKU, dto.Name, measurements, dto.Price, dto.IsActive), nil
}
