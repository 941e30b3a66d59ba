// Package receiptrepo persists payment receipts issued against job orders.
package receiptrepo

import (
	"time"

	"atelier/internal/core/domain/model/receipt"

	"github.com/shopspring/decimal"
)

// ReceiptDTO is the row of the receipts table.
type ReceiptDTO struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	ReceiptNumber string          `gorm:"column:receipt_number;size:50;not null;uniqueIndex"`
	ReceiptDate   time.Time       `gorm:"column:receipt_date;type:date;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Remarks       string          `gorm:"type:text;not null;default:''"`
	JobOrderID    int64           `gorm:"column:job_order_id;not null;index"`
	IsActive      bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ReceiptDTO) TableName() string {
	return "receipts"
}

func fromDomain(r *receipt.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ID:            r.ID(),
		ReceiptNumber: r.Number(),
		ReceiptDate:   r.Date(),
		Amount:        r.Amount(),
		Remarks:       r.Remarks(),
		JobOrderID:    r.JobOrderID(),
		IsActive:      r.IsActive(),
	}
}
