package http

import (
	"time"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/customer"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/material"
	"atelier/internal/core/domain/model/receipt"
	"atelier/internal/core/domain/model/sale"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(kernel.MoneyPlaces)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// JobOrderResponse is the composite view of a job order. "customer" is the
// customer's row id and "customer_id" its display code.
type JobOrderResponse struct {
	ID                       int64                 `json:"id"`
	JobOrderNumber           string                `json:"job_order_number"`
	Customer                 int64                 `json:"customer"`
	CustomerID               string                `json:"customer_id"`
	CustomerName             string                `json:"customer_name"`
	CustomerPhone            string                `json:"customer_phone"`
	Status                   string                `json:"status"`
	DeliveryDate             string                `json:"delivery_date"`
	TotalAmount              string                `json:"total_amount"`
	AdvanceAmount            string                `json:"advance_amount"`
	BalanceAmount            string                `json:"balance_amount"`
	ReceivedOnDeliveryAmount string                `json:"received_on_delivery_amount"`
	PaymentMethod            string                `json:"payment_method"`
	CashAmount               string                `json:"cash_amount"`
	CardAmount               string                `json:"card_amount"`
	Remarks                  string                `json:"remarks"`
	IsActive                 bool                  `json:"is_active"`
	IsBlocked                bool                  `json:"is_blocked"`
	CreatedAt                string                `json:"created_at"`
	UpdatedAt                string                `json:"updated_at"`
	Items                    []ItemResponse        `json:"job_order_items"`
	Measurements             []MeasurementResponse `json:"job_order_measurements"`
}

type ItemResponse struct {
	ID            int64  `json:"id"`
	Material      int64  `json:"material"`
	MaterialName  string `json:"material_name"`
	MaterialPrice string `json:"material_price"`
	Quantity      int    `json:"quantity"`
	Fees          string `json:"fees"`
	TotalAmount   string `json:"total_amount"`
	IsActive      bool   `json:"is_active"`
}

type MeasurementResponse struct {
	ID           int64  `json:"id"`
	Material     int64  `json:"material"`
	MaterialName string `json:"material_name"`
	Thool        string `json:"thool"`
	Kethet       string `json:"kethet"`
	ThoolKum     string `json:"thool_kum"`
	ArdhFKum     string `json:"ardh_f_kum"`
	Jamba        string `json:"jamba"`
	Ragab        string `json:"ragab"`
	Note1        string `json:"note1"`
	Note2        string `json:"note2"`
	Note3        string `json:"note3"`
	Note4        string `json:"note4"`
	IsActive     bool   `json:"is_active"`
}

func newJobOrderResponse(v queries.JobOrderView) JobOrderResponse {
	return JobOrderResponse{
		ID:                       v.ID,
		JobOrderNumber:           v.Number,
		Customer:                 v.CustomerID,
		CustomerID:               v.CustomerCode,
		CustomerName:             v.CustomerName,
		CustomerPhone:            v.CustomerPhone,
		Status:                   v.Status,
		DeliveryDate:             timestamp(v.DeliveryDate),
		TotalAmount:              money(v.TotalAmount),
		AdvanceAmount:            money(v.AdvanceAmount),
		BalanceAmount:            money(v.BalanceAmount),
		ReceivedOnDeliveryAmount: money(v.ReceivedOnDeliveryAmount),
		PaymentMethod:            v.PaymentMethod,
		CashAmount:               money(v.CashAmount),
		CardAmount:               money(v.CardAmount),
		Remarks:                  v.Remarks,
		IsActive:                 v.IsActive,
		IsBlocked:                v.IsBlocked,
		CreatedAt:                timestamp(v.CreatedAt),
		UpdatedAt:                timestamp(v.UpdatedAt),
		Items:                    newItemResponses(v.Items),
		Measurements:             newMeasurementResponses(v.Measurements),
	}
}

func newJobOrderResponses(views []queries.JobOrderView) []JobOrderResponse {
	resp := make([]JobOrderResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, newJobOrderResponse(v))
	}
	return resp
}

func newItemResponses(items []queries.ItemView) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, ItemResponse{
			ID:            it.ID,
			Material:      it.MaterialID,
			MaterialName:  it.MaterialName,
			MaterialPrice: money(it.MaterialPrice),
			Quantity:      it.Quantity,
			Fees:          money(it.Fees),
			TotalAmount:   money(it.TotalAmount),
			IsActive:      it.IsActive,
		})
	}
	return resp
}

func newMeasurementResponses(ms []queries.MeasurementView) []MeasurementResponse {
	resp := make([]MeasurementResponse, 0, len(ms))
	for _, m := range ms {
		resp = append(resp, MeasurementResponse{
			ID:           m.ID,
			Material:     m.MaterialID,
			MaterialName: m.MaterialName,
			Thool:        m.Thool.String(),
			Kethet:       m.Kethet.String(),
			ThoolKum:     m.ThoolKum.String(),
			ArdhFKum:     m.ArdhFKum.String(),
			Jamba:        m.Jamba.String(),
			Ragab:        m.Ragab.String(),
			Note1:        m.Notes[0],
			Note2:        m.Notes[1],
			Note3:        m.Notes[2],
			Note4:        m.Notes[3],
			IsActive:     m.IsActive,
		})
	}
	return resp
}

type JobOrderStatsResponse struct {
	TotalOrders  int64  `json:"total_orders"`
	Pending      int64  `json:"pending"`
	InProgress   int64  `json:"in_progress"`
	Completed    int64  `json:"completed"`
	Delivered    int64  `json:"delivered"`
	TotalRevenue string `json:"total_revenue"`
	TotalBalance string `json:"total_balance"`
}

func newJobOrderStatsResponse(s queries.JobOrderStats) JobOrderStatsResponse {
	return JobOrderStatsResponse{
		TotalOrders:  s.TotalOrders,
		Pending:      s.Pending,
		InProgress:   s.InProgress,
		Completed:    s.Completed,
		Delivered:    s.Delivered,
		TotalRevenue: money(s.TotalRevenue),
		TotalBalance: money(s.TotalBalance),
	}
}

type ToggleBlockResponse struct {
	ID        int64 `json:"id"`
	IsBlocked bool  `json:"is_blocked"`
}

type CustomerResponse struct {
	ID         int64  `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Balance    string `json:"balance"`
	Points     int    `json:"points"`
	IsActive   bool   `json:"is_active"`
}

func newCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID(),
		CustomerID: c.Code(),
		Name:       c.Name(),
		Phone:      c.Phone(),
		Balance:    money(c.Balance()),
		Points:     c.Points(),
		IsActive:   c.IsActive(),
	}
}

type MaterialResponse struct {
	ID       int64  `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Thool    string `json:"thool"`
	Kethet   string `json:"kethet"`
	ThoolKum string `json:"thool_kum"`
	ArdhFKum string `json:"ardh_f_kum"`
	Jamba    string `json:"jamba"`
	Ragab    string `json:"ragab"`
	Price    string `json:"price"`
	IsActive bool   `json:"is_active"`
}

func newMaterialResponse(m *material.Material) MaterialResponse {
	d := m.Measurements().Dimensions()
	return MaterialResponse{
		ID:       m.ID(),
		SKU:      m.SKU(),
		Name:     m.Name(),
		Thool:    d.Thool.String(),
		Kethet:   d.Kethet.String(),
		ThoolKum: d.ThoolKum.String(),
		ArdhFKum: d.ArdhFKum.String(),
		Jamba:    d.Jamba.String(),
		Ragab:    d.Ragab.String(),
		Price:    money(m.Price()),
		IsActive: m.IsActive(),
	}
}

type ReceiptResponse struct {
	ID             int64  `json:"id"`
	ReceiptID      string `json:"receipt_id"`
	ReceiptDate    string `json:"receipt_date"`
	ReceiptAmount  string `json:"receipt_amount"`
	ReceiptRemarks string `json:"receipt_remarks"`
	JobOrder       int64  `json:"job_order"`
	IsActive       bool   `json:"is_active"`
}

func newReceiptResponse(r *receipt.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:             r.ID(),
		ReceiptID:      r.Number(),
		ReceiptDate:    r.Date().Format(dateLayout),
		ReceiptAmount:  money(r.Amount()),
		ReceiptRemarks: r.Remarks(),
		JobOrder:       r.JobOrderID(),
		IsActive:       r.IsActive(),
	}
}

type SaleResponse struct {
	ID            int64  `json:"id"`
	SaleNumber    string `json:"sale_number"`
	CustomerName  string `json:"customer_name"`
	Amount        string `json:"amount"`
	TotalAmount   string `json:"total_amount"`
	Date          string `json:"date"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
	IsActive      bool   `json:"is_active"`
}

func newSaleResponse(s *sale.Sale) SaleResponse {
	return SaleResponse{
		ID:            s.ID(),
		SaleNumber:    s.Number(),
		CustomerName:  s.CustomerName(),
		Amount:        money(s.Amount()),
		TotalAmount:   money(s.TotalAmount()),
		Date:          timestamp(s.Date()),
		PaymentMethod: string(s.PaymentMethod()),
		Status:        s.Status(),
		Notes:         s.Notes(),
		IsActive:      s.IsActive(),
	}
}
