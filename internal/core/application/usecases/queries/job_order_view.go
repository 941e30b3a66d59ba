package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobOrderView is the composite read model of a job order: the order row,
// its customer and its active children.
type JobOrderView struct {
	ID                       int64
	Number                   string
	CustomerID               int64
	CustomerCode             string
	CustomerName             string
	CustomerPhone            string
	Status                   string
	DeliveryDate             time.Time
	TotalAmount              decimal.Decimal
	AdvanceAmount            decimal.Decimal
	BalanceAmount            decimal.Decimal
	ReceivedOnDeliveryAmount decimal.Decimal
	PaymentMethod            string
	CashAmount               decimal.Decimal
	CardAmount               decimal.Decimal
	Remarks                  string
	IsActive                 bool
	IsBlocked                bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
	Items                    []ItemView
	Measurements             []MeasurementView
}

type ItemView struct {
	ID            int64
	MaterialID    int64
	MaterialName  string
	MaterialPrice decimal.Decimal
	Quantity      int
	Fees          decimal.Decimal
	TotalAmount   decimal.Decimal
	IsActive      bool
}

type MeasurementView struct {
	ID           int64
	MaterialID   int64
	MaterialName string
	Thool        decimal.Decimal
	Kethet       decimal.Decimal
	ThoolKum     decimal.Decimal
	ArdhFKum     decimal.Decimal
	Jamba        decimal.Decimal
	Ragab        decimal.Decimal
	Notes        [4]string
	IsActive     bool
}

type jobOrderRow struct {
	ID                       int64
	JobOrderNumber           string
	CustomerID               int64
	CustomerCode             string
	CustomerName             string
	CustomerPhone            string
	Status                   string
	DeliveryDate             time.Time
	TotalAmount              decimal.Decimal
	AdvanceAmount            decimal.Decimal
	BalanceAmount            decimal.Decimal
	ReceivedOnDeliveryAmount decimal.Decimal
	PaymentMethod            string
	CashAmount               decimal.Decimal
	CardAmount               decimal.Decimal
	Remarks                  string
	IsActive                 bool
	IsBlocked                bool
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type itemRow struct {
	ID            int64
	JobOrderID    int64
	MaterialID    int64
	MaterialName  string
	MaterialPrice decimal.Decimal
	Quantity      int
	Fees          decimal.Decimal
	TotalAmount   decimal.Decimal
	IsActive      bool
}

type measurementRow struct {
	ID           int64
	JobOrderID   int64
	MaterialID   int64
	MaterialName string
	Thool        decimal.Decimal
	Kethet       decimal.Decimal
	ThoolKum     decimal.Decimal
	ArdhFKum     decimal.Decimal `gorm:"column:ardh_f_kum"`
	Jamba        decimal.Decimal
	Ragab        decimal.Decimal
	Note1        string `gorm:"column:note1"`
	Note2        string `gorm:"column:note2"`
	Note3        string `gorm:"column:note3"`
	Note4        string `gorm:"column:note4"`
	IsActive     bool
}

const jobOrderColumns = `jo.id, jo.job_order_number, jo.customer_id,
	c.customer_code, c.name AS customer_name, c.phone AS customer_phone,
	jo.status, jo.delivery_date, jo.total_amount, jo.advance_amount, jo.balance_amount,
	jo.received_on_delivery_amount, jo.payment_method, jo.cash_amount, jo.card_amount,
	jo.remarks, jo.is_active, jo.is_blocked, jo.created_at, jo.updated_at`

// activeJobOrders selects active orders joined with their customer.
func activeJobOrders(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).
		Table("job_orders AS jo").
		Joins("JOIN customers AS c ON c.id = jo.customer_id").
		Where("jo.is_active = ?", true)
}

func loadItems(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]ItemView, error) {
	var rows []itemRow
	err := db.WithContext(ctx).
		Table("job_order_items AS i").
		Select(`i.id, i.job_order_id, i.material_id, m.name AS material_name, m.price AS material_price,
			i.quantity, i.fees, i.total_amount, i.is_active`).
		Joins("JOIN materials AS m ON m.id = i.material_id").
		Where("i.job_order_id IN ? AND i.is_active = ?", orderIDs, true).
		Order("i.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]ItemView, len(orderIDs))
	for _, r := range rows {
		byOrder[r.JobOrderID] = append(byOrder[r.JobOrderID], ItemView{
			ID:            r.ID,
			MaterialID:    r.MaterialID,
			MaterialName:  r.MaterialName,
			MaterialPrice: r.MaterialPrice,
			Quantity:      r.Quantity,
			Fees:          r.Fees,
			TotalAmount:   r.TotalAmount,
			IsActive:      r.IsActive,
		})
	}
	return byOrder, nil
}

func loadMeasurements(ctx context.Context, db *gorm.DB, orderIDs []int64) (map[int64][]MeasurementView, error) {
	var rows []measurementRow
	err := db.WithContext(ctx).
		Table("job_order_measurements AS jm").
		Select(`jm.id, jm.job_order_id, jm.material_id, m.name AS material_name,
			jm.thool, jm.kethet, jm.thool_kum, jm.ardh_f_kum, jm.jamba, jm.ragab,
			jm.note1, jm.note2, jm.note3, jm.note4, jm.is_active`).
		Joins("JOIN materials AS m ON m.id = jm.material_id").
		Where("jm.job_order_id IN ? AND jm.is_active = ?", orderIDs, true).
		Order("jm.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byOrder := make(map[int64][]MeasurementView, len(orderIDs))
	for _, r := range rows {
		byOrder[r.JobOrderID] = append(byOrder[r.JobOrderID], MeasurementView{
			ID:           r.ID,
			MaterialID:   r.MaterialID,
			MaterialName: r.MaterialName,
			Thool:        r.Thool,
			Kethet:       r.Kethet,
			ThoolKum:     r.ThoolKum,
			ArdhFKum:     r.ArdhFKum,
			Jamba:        r.Jamba,
			Ragab:        r.Ragab,
			Notes:        [4]string{r.Note1, r.Note2, r.Note3, r.Note4},
			IsActive:     r.IsActive,
		})
	}
	return byOrder, nil
}

// assembleViews attaches the active children to each order row, keeping the
// row order.
func assembleViews(ctx context.Context, db *gorm.DB, rows []jobOrderRow) ([]JobOrderView, error) {
	views := make([]JobOrderView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	items, err := loadItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	measurements, err := loadMeasurements(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		v := r.view()
		v.Items = items[r.ID]
		if v.Items == nil {
			v.Items = []ItemView{}
		}
		v.Measurements = measurements[r.ID]
		if v.Measurements == nil {
			v.Measurements = []MeasurementView{}
		}
		views = append(views, v)
	}
	return views, nil
}

func (r jobOrderRow) view() JobOrderView {
	return JobOrderView{
		ID:                       r.ID,
		Number:                   r.JobOrderNumber,
		CustomerID:               r.CustomerID,
		CustomerCode:             r.CustomerCode,
		CustomerName:             r.CustomerName,
		CustomerPhone:            r.CustomerPhone,
		Status:                   r.Status,
		DeliveryDate:             r.DeliveryDate,
		TotalAmount:              r.TotalAmount,
		AdvanceAmount:            r.AdvanceAmount,
		BalanceAmount:            r.BalanceAmount,
		ReceivedOnDeliveryAmount: r.ReceivedOnDeliveryAmount,
		PaymentMethod:            r.PaymentMethod,
		CashAmount:               r.CashAmount,
		CardAmount:               r.CardAmount,
		Remarks:                  r.Remarks,
		IsActive:                 r.IsActive,
		IsBlocked:                r.IsBlocked,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
}
