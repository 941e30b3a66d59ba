package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date accepts either a calendar date or an RFC 3339 timestamp. Calendar
// dates are taken as midnight UTC.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(dateLayout, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("date %q is neither YYYY-MM-DD nor RFC 3339", raw)
	}
	d.Time = t.UTC()
	return nil
}

func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

type CustomerRequest struct {
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Balance decimal.Decimal `json:"balance"`
	Points  int             `json:"points"`
}

func (r CustomerRequest) data() commands.CustomerData {
	return commands.CustomerData{
		Name:    r.Name,
		Phone:   r.Phone,
		Balance: r.Balance,
		Points:  r.Points,
	}
}

// ItemRequest is one billed line. The material may be sent as "material" or
// "material_id", as an id, a numeric string or an object with an id.
type ItemRequest struct {
	Material   json.RawMessage `json:"material"`
	MaterialID json.RawMessage `json:"material_id"`
	Quantity   *int            `json:"quantity" validate:"required"`
	Fees       decimal.Decimal `json:"fees"`
}

func (r ItemRequest) input() commands.ItemInput {
	var quantity int
	if r.Quantity != nil {
		quantity = *r.Quantity
	}
	return commands.ItemInput{
		Material: materialRef(r.MaterialID, r.Material),
		Quantity: quantity,
		Fees:     r.Fees,
	}
}

type MeasurementRequest struct {
	Material   json.RawMessage `json:"material"`
	MaterialID json.RawMessage `json:"material_id"`
	Thool      decimal.Decimal `json:"thool"`
	Kethet     decimal.Decimal `json:"kethet"`
	ThoolKum   decimal.Decimal `json:"thool_kum"`
	ArdhFKum   decimal.Decimal `json:"ardh_f_kum"`
	Jamba      decimal.Decimal `json:"jamba"`
	Ragab      decimal.Decimal `json:"ragab"`
	Note1      string          `json:"note1"`
	Note2      string          `json:"note2"`
	Note3      string          `json:"note3"`
	Note4      string          `json:"note4"`
}

func (r MeasurementRequest) input() commands.MeasurementInput {
	return commands.MeasurementInput{
		Material: materialRef(r.MaterialID, r.Material),
		Dimensions: kernel.Dimensions{
			Thool:    r.Thool,
			Kethet:   r.Kethet,
			ThoolKum: r.ThoolKum,
			ArdhFKum: r.ArdhFKum,
			Jamba:    r.Jamba,
			Ragab:    r.Ragab,
		},
		Notes: order.Notes{r.Note1, r.Note2, r.Note3, r.Note4},
	}
}

func materialRef(primary, fallback json.RawMessage) commands.MaterialRef {
	if isAbsent(primary) {
		return commands.MaterialRefFromJSON(fallback)
	}
	return commands.MaterialRefFromJSON(primary)
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

type CreateJobOrderRequest struct {
	CustomerID    *int64               `json:"customer_id"`
	CustomerData  *CustomerRequest     `json:"customer_data"`
	Status        *string              `json:"status"`
	DeliveryDate  *Date                `json:"delivery_date"`
	TotalAmount   *decimal.Decimal     `json:"total_amount" validate:"required"`
	AdvanceAmount *decimal.Decimal     `json:"advance_amount" validate:"required"`
	PaymentMethod string               `json:"payment_method"`
	CashAmount    *decimal.Decimal     `json:"cash_amount"`
	CardAmount    *decimal.Decimal     `json:"card_amount"`
	Remarks       string               `json:"remarks"`
	Items         []ItemRequest        `json:"job_order_items" validate:"dive"`
	Measurements  []MeasurementRequest `json:"job_order_measurements"`
}

func (r CreateJobOrderRequest) command() (commands.CreateJobOrderCommand, error) {
	var data *commands.CustomerData
	if r.CustomerData != nil {
		d := r.CustomerData.data()
		data = &d
	}

	var method order.PaymentMethod
	if r.PaymentMethod != "" {
		method = paymentMethod(r.PaymentMethod)
	}

	return commands.NewCreateJobOrderCommand(commands.CreateJobOrderParams{
		CustomerID:    r.CustomerID,
		CustomerData:  data,
		Status:        status(r.Status),
		DeliveryDate:  r.DeliveryDate.timePtr(),
		TotalAmount:   *r.TotalAmount,
		AdvanceAmount: *r.AdvanceAmount,
		PaymentMethod: method,
		CashAmount:    r.CashAmount,
		CardAmount:    r.CardAmount,
		Remarks:       r.Remarks,
		Items:         itemInputs(r.Items),
		Measurements:  measurementInputs(r.Measurements),
	})
}

// UpdateJobOrderRequest is a partial update. A child list that is absent or
// null leaves the stored list as it is; any other value replaces it.
type UpdateJobOrderRequest struct {
	Status                   *string               `json:"status"`
	DeliveryDate             *Date                 `json:"delivery_date"`
	TotalAmount              *decimal.Decimal      `json:"total_amount"`
	AdvanceAmount            *decimal.Decimal      `json:"advance_amount"`
	ReceivedOnDeliveryAmount *decimal.Decimal      `json:"received_on_delivery_amount"`
	PaymentMethod            *string               `json:"payment_method"`
	CashAmount               *decimal.Decimal      `json:"cash_amount"`
	CardAmount               *decimal.Decimal      `json:"card_amount"`
	Remarks                  *string               `json:"remarks"`
	Items                    *[]ItemRequest        `json:"job_order_items" validate:"omitempty,dive"`
	Measurements             *[]MeasurementRequest `json:"job_order_measurements"`
}

func (r UpdateJobOrderRequest) command(jobOrderID int64) (commands.UpdateJobOrderCommand, error) {
	revision := order.Revision{
		Status:             status(r.Status),
		DeliveryDate:       r.DeliveryDate.timePtr(),
		TotalAmount:        r.TotalAmount,
		AdvanceAmount:      r.AdvanceAmount,
		ReceivedOnDelivery: r.ReceivedOnDeliveryAmount,
		CashAmount:         r.CashAmount,
		CardAmount:         r.CardAmount,
		Remarks:            r.Remarks,
	}
	if r.PaymentMethod != nil {
		method := paymentMethod(*r.PaymentMethod)
		revision.PaymentMethod = &method
	}

	items := commands.Keep[commands.ItemInput]()
	if r.Items != nil {
		items = commands.Replace(itemInputs(*r.Items))
	}
	measurements := commands.Keep[commands.MeasurementInput]()
	if r.Measurements != nil {
		measurements = commands.Replace(measurementInputs(*r.Measurements))
	}

	return commands.NewUpdateJobOrderCommand(jobOrderID, revision, items, measurements)
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SettleDeliveryRequest also accepts the misspelled key older clients send.
type SettleDeliveryRequest struct {
	ReceivedOnDeliveryAmount *decimal.Decimal `json:"received_on_delivery_amount"`
	LegacyReceived           *decimal.Decimal `json:"recived_on_delivery_amount"`
	Status                   *string          `json:"status"`
}

func (r SettleDeliveryRequest) received() *decimal.Decimal {
	if r.ReceivedOnDeliveryAmount != nil {
		return r.ReceivedOnDeliveryAmount
	}
	return r.LegacyReceived
}

type CreateMaterialRequest struct {
	SKU      string          `json:"sku" validate:"omitempty,max=32"`
	Name     string          `json:"name" validate:"required,max=255"`
	Thool    decimal.Decimal `json:"thool"`
	Kethet   decimal.Decimal `json:"kethet"`
	ThoolKum decimal.Decimal `json:"thool_kum"`
	ArdhFKum decimal.Decimal `json:"ardh_f_kum"`
	Jamba    decimal.Decimal `json:"jamba"`
	Ragab    decimal.Decimal `json:"ragab"`
	Price    decimal.Decimal `json:"price"`
}

func (r CreateMaterialRequest) dimensions() kernel.Dimensions {
	return kernel.Dimensions{
		Thool:    r.Thool,
		Kethet:   r.Kethet,
		ThoolKum: r.ThoolKum,
		ArdhFKum: r.ArdhFKum,
		Jamba:    r.Jamba,
		Ragab:    r.Ragab,
	}
}

type CreateReceiptRequest struct {
	JobOrderID  int64           `json:"job_order" validate:"required,gt=0"`
	ReceiptDate *Date           `json:"receipt_date"`
	Amount      decimal.Decimal `json:"receipt_amount"`
	Remarks     string          `json:"receipt_remarks"`
}

type CreateSaleRequest struct {
	CustomerName  string          `json:"customer_name" validate:"required,max=255"`
	Amount        decimal.Decimal `json:"amount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	SaleDate      *Date           `json:"date"`
}

func itemInputs(reqs []ItemRequest) []commands.ItemInput {
	inputs := make([]commands.ItemInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, r.input())
	}
	return inputs
}

func measurementInputs(reqs []MeasurementRequest) []commands.MeasurementInput {
	inputs := make([]commands.MeasurementInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, r.input())
	}
	return inputs
}

// status keeps an unknown value as is so that the command reports it.
func status(raw *string) *order.Status {
	if raw == nil {
		return nil
	}
	s := order.Status(strings.TrimSpace(*raw))
	return &s
}

func paymentMethod(raw string) order.PaymentMethod {
	raw = strings.TrimSpace(raw)
	if m, err := order.ParsePaymentMethod(raw); err == nil {
		return m
	}
	return order.PaymentMethod(raw)
}
