// Package salerepo persists retail sales.
package salerepo

import (
	"time"

	"atelier/internal/core/domain/model/sale"

	"github.com/shopspring/decimal"
)

// SaleDTO is the row of the sales table.
type SaleDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	SaleNumber    string          `gorm:"column:sale_number;size:20;not null;uniqueIndex"`
	CustomerName  string          `gorm:"size:100;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PaymentMethod string          `gorm:"size:20;not null"`
	Status        string          `gorm:"size:20;not null;default:pending"`
	Notes         string          `gorm:"type:text;not null;default:''"`
	SaleDate      time.Time       `gorm:"column:sale_date;not null"`
	IsActive      bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (SaleDTO) TableName() string {
	return "sales"
}

func fromDomain(s *sale.Sale) SaleDTO {
	return SaleDTO{
		ID:            s.ID(),
		SaleNumber:    s.Number(),
		CustomerName:  s.CustomerName(),
		Amount:        s.Amount(),
		TotalAmount:   s.TotalAmount(),
		PaymentMethod: string(s.PaymentMethod()),
		Status:        s.Status(),
		Notes:         s.Notes(),
		SaleDate:      s.Date(),
		IsActive:      s.IsActive(),
	}
}
