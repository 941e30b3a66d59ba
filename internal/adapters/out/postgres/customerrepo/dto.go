// Package customerrepo persists customer aggregates.
package customerrepo

import (
	"time"

	"atelier/internal/core/domain/model/customer"

	"github.com/shopspring/decimal"
)

// CustomerDTO is the row of the customers table.
type CustomerDTO struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	CustomerCode string          `gorm:"column:customer_code;size:50;not null;uniqueIndex"`
	Name         string          `gorm:"size:100;not null"`
	Phone        string          `gorm:"size:20;not null"`
	Balance      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Points       int             `gorm:"not null;default:0"`
	IsActive     bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID(),
		CustomerCode: c.Code(),
		Name:         c.Name(),
		Phone:        c.Phone(),
		Balance:      c.Balance(),
		Points:       c.Points(),
		IsActive:     c.IsActive(),
	}
}

func toDomain(dto CustomerDTO) *customer.Customer {
	return customer.RestoreCustomer(dto.ID, dto.CustomerCode, dto.Name, dto.Phone, dto.Balance, dto.Points, dto.IsActive)
}
