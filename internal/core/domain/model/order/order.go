package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Terms are the monetary inputs of a new order.
type Terms struct {
	TotalAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal
	PaymentMethod PaymentMethod
	// CashAmount and CardAmount are optional explicit channel amounts.
	CashAmount *decimal.Decimal
	CardAmount *decimal.Decimal
}

// Revision is a partial update. Nil fields are left untouched.
type Revision struct {
	Status             *Status
	DeliveryDate       *time.Time
	TotalAmount        *decimal.Decimal
	AdvanceAmount      *decimal.Decimal
	ReceivedOnDelivery *decimal.Decimal
	PaymentMethod      *PaymentMethod
	CashAmount         *decimal.Decimal
	CardAmount         *decimal.Decimal
	Remarks            *string
}

// Order is the job order aggregate root.
//
// Order follows these invariants:
//   - Must reference a customer; the reference never changes
//   - Total, advance and received-on-delivery amounts are never negative
//   - Balance is derived from the amounts and never set directly
//   - Cash + card equals total after every payment resolution
//   - Items and measurements are replaced as whole collections
type Order struct {
	id                 int64
	number             string
	customerID         int64
	status             Status
	deliveryDate       time.Time
	totalAmount        decimal.Decimal
	advanceAmount      decimal.Decimal
	receivedOnDelivery decimal.Decimal
	balanceAmount      decimal.Decimal
	paymentMethod      PaymentMethod
	channels           ChannelAmounts
	isActive           bool
	isBlocked          bool
	remarks            string
	createdAt          time.Time
	updatedAt          time.Time

	items                []*Item
	measurements         []*Measurement
	itemsReplaced        bool
	measurementsReplaced bool

	isConstructed bool
}

// NewOrder creates a pending, active, unblocked order. Balance is computed with
// BalanceAtCreation and the payment split with AllocatePayment. When both
// explicit channel amounts are absent or zero a split order is divided evenly.
//
// Example:
//
//	o, err := order.NewOrder("JO-0001", customerID, time.Now().AddDate(0, 0, 7), order.Terms{
//	    TotalAmount:   decimal.RequireFromString("150.00"),
//	    AdvanceAmount: decimal.RequireFromString("50.00"),
//	    PaymentMethod: order.Cash,
//	}, "")
func NewOrder(number string, customerID int64, deliveryDate time.Time, terms Terms, remarks string) (*Order, error) {
	o := &Order{
		status:        Pending,
		isActive:      true,
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setDeliveryDate(deliveryDate),
		o.setTotalAmount(terms.TotalAmount),
		o.setAdvanceAmount(terms.AdvanceAmount),
		terms.PaymentMethod.Validate(),
	); err != nil {
		return nil, err
	}

	cash, card := terms.CashAmount, terms.CardAmount
	if zeroOrAbsent(cash) && zeroOrAbsent(card) {
		cash, card = nil, nil
	}
	if err := o.allocate(terms.PaymentMethod, cash, card); err != nil {
		return nil, err
	}

	o.receivedOnDelivery = decimal.Zero
	o.balanceAmount = BalanceAtCreation(o.totalAmount, o.advanceAmount)
	return o, nil
}

// Snapshot carries every persisted field of an order for RestoreOrder.
type Snapshot struct {
	ID                 int64
	Number             string
	CustomerID         int64
	Status             Status
	DeliveryDate       time.Time
	TotalAmount        decimal.Decimal
	AdvanceAmount      decimal.Decimal
	ReceivedOnDelivery decimal.Decimal
	BalanceAmount      decimal.Decimal
	PaymentMethod      PaymentMethod
	CashAmount         decimal.Decimal
	CardAmount         decimal.Decimal
	IsActive           bool
	IsBlocked          bool
	Remarks            string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Items              []*Item
	Measurements       []*Measurement
}

// RestoreOrder rehydrates an order from storage. Stored amounts are trusted;
// only the enum values are checked.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := errors.Join(s.Status.Validate(), s.PaymentMethod.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                 s.ID,
		number:             s.Number,
		customerID:         s.CustomerID,
		status:             s.Status,
		deliveryDate:       s.DeliveryDate,
		totalAmount:        s.TotalAmount,
		advanceAmount:      s.AdvanceAmount,
		receivedOnDelivery: s.ReceivedOnDelivery,
		balanceAmount:      s.BalanceAmount,
		paymentMethod:      s.PaymentMethod,
		channels:           ChannelAmounts{Cash: s.CashAmount, Card: s.CardAmount},
		isActive:           s.IsActive,
		isBlocked:          s.IsBlocked,
		remarks:            s.Remarks,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
		items:              s.Items,
		measurements:       s.Measurements,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64                           { return o.id }
func (o *Order) Number() string                      { return o.number }
func (o *Order) CustomerID() int64                   { return o.customerID }
func (o *Order) Status() Status                      { return o.status }
func (o *Order) DeliveryDate() time.Time             { return o.deliveryDate }
func (o *Order) TotalAmount() decimal.Decimal        { return o.totalAmount }
func (o *Order) AdvanceAmount() decimal.Decimal      { return o.advanceAmount }
func (o *Order) ReceivedOnDelivery() decimal.Decimal { return o.receivedOnDelivery }
func (o *Order) BalanceAmount() decimal.Decimal      { return o.balanceAmount }
func (o *Order) PaymentMethod() PaymentMethod        { return o.paymentMethod }
func (o *Order) CashAmount() decimal.Decimal         { return o.channels.Cash }
func (o *Order) CardAmount() decimal.Decimal         { return o.channels.Card }
func (o *Order) IsActive() bool                      { return o.isActive }
func (o *Order) IsBlocked() bool                     { return o.isBlocked }
func (o *Order) Remarks() string                     { return o.remarks }
func (o *Order) CreatedAt() time.Time                { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                { return o.updatedAt }

// Items returns the order's items. After ReplaceItems this is the replacement set.
func (o *Order) Items() []*Item { return o.items }

// Measurements returns the order's measurements.
func (o *Order) Measurements() []*Measurement { return o.measurements }

// ItemsReplaced reports whether ReplaceItems was called since the order was loaded.
func (o *Order) ItemsReplaced() bool { return o.itemsReplaced }

// MeasurementsReplaced reports whether ReplaceMeasurements was called since the order was loaded.
func (o *Order) MeasurementsReplaced() bool { return o.measurementsReplaced }

// AssignID is called by the repository after the first insert.
func (o *Order) AssignID(id int64) {
	if o.id == 0 {
		o.id = id
	}
}

// SetStatus sets any of the four statuses regardless of the current one.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Revise applies a partial update.
//
// Balance is recomputed with BalanceAtCreation only when total or advance is
// present. Payment is re-resolved only when total, method, cash or card is
// present; channel amounts absent from the revision count as not supplied.
// ReceivedOnDelivery is stored as given without touching the balance.
func (o *Order) Revise(r Revision) error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.PaymentMethod != nil {
		if err := r.PaymentMethod.Validate(); err != nil {
			return err
		}
	}

	total, advance, received := o.totalAmount, o.advanceAmount, o.receivedOnDelivery
	var amountErrs []error
	if r.TotalAmount != nil {
		v, err := kernel.NonNegativeAmount("total_amount", *r.TotalAmount)
		total, amountErrs = v, append(amountErrs, err)
	}
	if r.AdvanceAmount != nil {
		v, err := kernel.NonNegativeAmount("advance_amount", *r.AdvanceAmount)
		advance, amountErrs = v, append(amountErrs, err)
	}
	if r.ReceivedOnDelivery != nil {
		v, err := kernel.NonNegativeAmount("received_on_delivery_amount", *r.ReceivedOnDelivery)
		received, amountErrs = v, append(amountErrs, err)
	}
	if r.DeliveryDate != nil && r.DeliveryDate.IsZero() {
		amountErrs = append(amountErrs, errs.NewValueIsRequiredError("delivery_date"))
	}
	if err := errors.Join(amountErrs...); err != nil {
		return err
	}

	method := o.paymentMethod
	if r.PaymentMethod != nil {
		method = *r.PaymentMethod
	}
	paymentTouched := r.TotalAmount != nil || r.PaymentMethod != nil || r.CashAmount != nil || r.CardAmount != nil
	channels := o.channels
	if paymentTouched {
		resolved, err := AllocatePayment(total, method, r.CashAmount, r.CardAmount)
		if err != nil {
			return err
		}
		channels = resolved
	}

	o.totalAmount, o.advanceAmount, o.receivedOnDelivery = total, advance, received
	o.paymentMethod, o.channels = method, channels
	if r.TotalAmount != nil || r.AdvanceAmount != nil {
		o.balanceAmount = BalanceAtCreation(total, advance)
	}
	if r.Status != nil {
		o.status = *r.Status
	}
	if r.DeliveryDate != nil {
		o.deliveryDate = *r.DeliveryDate
	}
	if r.Remarks != nil {
		o.remarks = *r.Remarks
	}
	return nil
}

// SettleDelivery records the amount received on delivery and, when given, the
// new status. A received amount of zero is still applied.
func (o *Order) SettleDelivery(received *decimal.Decimal, status *Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	if received != nil {
		v, err := kernel.NonNegativeAmount("received_on_delivery_amount", *received)
		if err != nil {
			return err
		}
		balance := BalanceAtDelivery(o.totalAmount, o.advanceAmount, v)
		if err = kernel.WithinMoneyRange("received_on_delivery_amount", balance); err != nil {
			return err
		}
		o.receivedOnDelivery = v
		o.balanceAmount = balance
	}

	if status != nil {
		o.status = *status
	}
	return nil
}

// ToggleBlock flips the blocked flag and returns the new value.
func (o *Order) ToggleBlock() bool {
	o.isBlocked = !o.isBlocked
	return o.isBlocked
}

// Deactivate soft-deletes the order. Children are left as they are.
func (o *Order) Deactivate() {
	o.isActive = false
}

// ReplaceItems swaps the whole item collection. An empty slice clears it.
func (o *Order) ReplaceItems(items []*Item) {
	o.items = append(make([]*Item, 0, len(items)), items...)
	o.itemsReplaced = true
}

// ReplaceMeasurements swaps the whole measurement collection.
func (o *Order) ReplaceMeasurements(measurements []*Measurement) {
	o.measurements = append(make([]*Measurement, 0, len(measurements)), measurements...)
	o.measurementsReplaced = true
}

// ItemsTotal is the sum of the active item totals. It is informational and
// not tied to TotalAmount.
func (o *Order) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range o.items {
		if item.IsActive() {
			sum = sum.Add(item.TotalAmount())
		}
	}
	return sum
}

func (o *Order) allocate(method PaymentMethod, cash, card *decimal.Decimal) error {
	channels, err := AllocatePayment(o.totalAmount, method, cash, card)
	if err != nil {
		return err
	}
	o.paymentMethod = method
	o.channels = channels
	return nil
}

func (o *Order) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("job_order_number")
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", fmt.Errorf("%d is not a valid customer id", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryDate(deliveryDate time.Time) error {
	if deliveryDate.IsZero() {
		return errs.NewValueIsRequiredError("delivery_date")
	}
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setTotalAmount(total decimal.Decimal) error {
	v, err := kernel.NonNegativeAmount("total_amount", total)
	if err != nil {
		return err
	}
	o.totalAmount = v
	return nil
}

func (o *Order) setAdvanceAmount(advance decimal.Decimal) error {
	v, err := kernel.NonNegativeAmount("advance_amount", advance)
	if err != nil {
		return err
	}
	o.advanceAmount = v
	return nil
}

func zeroOrAbsent(d *decimal.Decimal) bool {
	return d == nil || d.IsZero()
}
