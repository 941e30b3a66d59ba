// Package joborderrepo persists the job order aggregate: the job_orders row
// and its owned job_order_items and job_order_measurements rows.
package joborderrepo

import (
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// JobOrderDTO is the row of the job_orders table.
type JobOrderDTO struct {
	ID                       int64           `gorm:"primaryKey;autoIncrement"`
	JobOrderNumber           string          `gorm:"column:job_order_number;size:20;not null;uniqueIndex"`
	CustomerID               int64           `gorm:"column:customer_id;not null;index"`
	Status                   string          `gorm:"size:20;not null;default:pending;index"`
	DeliveryDate             time.Time       `gorm:"column:delivery_date;not null;index"`
	TotalAmount              decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	AdvanceAmount            decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	ReceivedOnDeliveryAmount decimal.Decimal `gorm:"column:received_on_delivery_amount;type:numeric(10,2);not null;default:0"`
	BalanceAmount            decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PaymentMethod            string          `gorm:"size:20;not null;default:cash"`
	CashAmount               decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	CardAmount               decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	IsActive                 bool            `gorm:"not null;default:true"`
	IsBlocked                bool            `gorm:"not null;default:false"`
	Remarks                  string          `gorm:"type:text;not null;default:''"`
	CreatedAt                time.Time       `gorm:"index"`
	UpdatedAt                time.Time

	Items        []JobOrderItemDTO        `gorm:"foreignKey:JobOrderID"`
	Measurements []JobOrderMeasurementDTO `gorm:"foreignKey:JobOrderID"`
}

func (JobOrderDTO) TableName() string {
	return "job_orders"
}

// JobOrderItemDTO is a billed line of a job order.
type JobOrderItemDTO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	JobOrderID  int64           `gorm:"column:job_order_id;not null;index"`
	MaterialID  int64           `gorm:"column:material_id;not null;index"`
	Quantity    int             `gorm:"not null;default:1"`
	Fees        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsActive    bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (JobOrderItemDTO) TableName() string {
	return "job_order_items"
}

// JobOrderMeasurementDTO is a set of body measurements taken for a material.
type JobOrderMeasurementDTO struct {
	ID         int64         `gorm:"primaryKey;autoIncrement"`
	JobOrderID int64         `gorm:"column:job_order_id;not null;index"`
	MaterialID int64         `gorm:"column:material_id;not null;index"`
	Dimensions DimensionsDTO `gorm:"embedded"`
	Note1      string        `gorm:"column:note1;type:text;not null;default:''"`
	Note2      string        `gorm:"column:note2;type:text;not null;default:''"`
	Note3      string        `gorm:"column:note3;type:text;not null;default:''"`
	Note4      string        `gorm:"column:note4;type:text;not null;default:''"`
	IsActive   bool          `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (JobOrderMeasurementDTO) TableName() string {
	return "job_order_measurements"
}

// DimensionsDTO is embedded into measurement rows.
type DimensionsDTO struct {
	Thool    decimal.Decimal `gorm:"column:thool;type:numeric(10,2);not null;default:0"`
	Kethet   decimal.Decimal `gorm:"column:kethet;type:numeric(10,2);not null;default:0"`
	ThoolKum decimal.Decimal `gorm:"column:thool_kum;type:numeric(10,2);not null;default:0"`
	ArdhFKum decimal.Decimal `gorm:"column:ardh_f_kum;type:numeric(10,2);not null;default:0"`
	Jamba    decimal.Decimal `gorm:"column:jamba;type:numeric(10,2);not null;default:0"`
	Ragab    decimal.Decimal `gorm:"column:ragab;type:numeric(10,2);not null;default:0"`
}

// fromDomain maps the parent row only; children are mapped per collection so
// that unchanged collections are never written.
func fromDomain(o *order.Order) JobOrderDTO {
	return JobOrderDTO{
		ID:                       o.ID(),
		JobOrderNumber:           o.Number(),
		CustomerID:               o.CustomerID(),
		Status:                   string(o.Status()),
		DeliveryDate:             o.DeliveryDate(),
		TotalAmount:              o.TotalAmount(),
		AdvanceAmount:            o.AdvanceAmount(),
		ReceivedOnDeliveryAmount: o.ReceivedOnDelivery(),
		BalanceAmount:            o.BalanceAmount(),
		PaymentMethod:            string(o.PaymentMethod()),
		CashAmount:               o.CashAmount(),
		CardAmount:               o.CardAmount(),
		IsActive:                 o.IsActive(),
		IsBlocked:                o.IsBlocked(),
		Remarks:                  o.Remarks(),
	}
}

func itemsFromDomain(orderID int64, items []*order.Item) []JobOrderItemDTO {
	dtos := make([]JobOrderItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, JobOrderItemDTO{
			JobOrderID:  orderID,
			MaterialID:  item.MaterialID(),
			Quantity:    item.Quantity(),
			Fees:        item.Fees(),
			TotalAmount: item.TotalAmount(),
			IsActive:    item.IsActive(),
		})
	}
	return dtos
}

func measurementsFromDomain(orderID int64, measurements []*order.Measurement) []JobOrderMeasurementDTO {
	dtos := make([]JobOrderMeasurementDTO, 0, len(measurements))
	for _, m := range measurements {
		d := m.Measurements().Dimensions()
		notes := m.Notes()
		dtos = append(dtos, JobOrderMeasurementDTO{
			JobOrderID: orderID,
			MaterialID: m.MaterialID(),
			Dimensions: DimensionsDTO{
				Thool:    d.Thool,
				Kethet:   d.Kethet,
				ThoolKum: d.ThoolKum,
				ArdhFKum: d.ArdhFKum,
				Jamba:    d.Jamba,
				Ragab:    d.Ragab,
			},
			Note1:    notes[0],
			Note2:    notes[1],
			Note3:    notes[2],
			Note4:    notes[3],
			IsActive: m.IsActive(),
		})
	}
	return dtos
}

func toDomain(dto JobOrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, i := range dto.Items {
		items = append(items, order.RestoreItem(i.ID, i.MaterialID, i.Quantity, i.Fees, i.TotalAmount, i.IsActive))
	}

	measurements := make([]*order.Measurement, 0, len(dto.Measurements))
	for _, m := range dto.Measurements {
		values, err := kernel.NewMeasurements(kernel.Dimensions{
			Thool:    m.Dimensions.Thool,
			Kethet:   m.Dimensions.Kethet,
			ThoolKum: m.Dimensions.ThoolKum,
			ArdhFKum: m.Dimensions.ArdhFKum,
			Jamba:    m.Dimensions.Jamba,
			Ragab:    m.Dimensions.Ragab,
		})
		if err != nil {
			return nil, err
		}
		notes := order.Notes{m.Note1, m.Note2, m.Note3, m.Note4}
		measurements = append(measurements, order.RestoreMeasurement(m.ID, m.MaterialID, values, notes, m.IsActive))
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                 dto.ID,
		Number:             dto.JobOrderNumber,
		CustomerID:         dto.CustomerID,
		Status:             order.Status(dto.Status),
		DeliveryDate:       dto.DeliveryDate,
		TotalAmount:        dto.TotalAmount,
		AdvanceAmount:      dto.AdvanceAmount,
		ReceivedOnDelivery: dto.ReceivedOnDeliveryAmount,
		BalanceAmount:      dto.BalanceAmount,
		PaymentMethod:      order.PaymentMethod(dto.PaymentMethod),
		CashAmount:         dto.CashAmount,
		CardAmount:         dto.CardAmount,
		IsActive:           dto.IsActive,
		IsBlocked:          dto.IsBlocked,
		Remarks:            dto.Remarks,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
		Items:              items,
		Measurements:       measurements,
	})
}
