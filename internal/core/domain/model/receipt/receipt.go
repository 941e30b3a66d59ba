// Package receipt records payments taken against a job order's balance.
package receipt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")
	ErrJobOrderIsInactive      = errors.New("job order is inactive")
)

// Receipt is a payment slip. Issuing one does not change the order's balance.
type Receipt struct {
	id         int64
	number     string
	date       time.Time
	amount     decimal.Decimal
	remarks    string
	jobOrderID int64
	isActive   bool

	isConstructed bool
}

// NewReceipt issues a receipt for jobOrder. The amount must be positive, the
// order active and the amount no larger than the order's current balance.
func NewReceipt(number string, jobOrder *order.Order, date time.Time, amount decimal.Decimal, remarks string) (*Receipt, error) {
	if err := jobOrder.Validate(); err != nil {
		return nil, err
	}

	r := &Receipt{
		date:          date,
		remarks:       remarks,
		jobOrderID:    jobOrder.ID(),
		isActive:      true,
		isConstructed: true,
	}

	if strings.TrimSpace(number) == "" {
		return nil, errs.NewValueIsRequiredError("receipt_number")
	}
	r.number = number

	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("receipt_date")
	}

	v, err := kernel.PositiveAmount("amount", amount)
	if err != nil {
		return nil, err
	}

	if !jobOrder.IsActive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("job_order", ErrJobOrderIsInactive)
	}

	if v.GreaterThan(jobOrder.BalanceAmount()) {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("receipt amount (%s) cannot exceed job order balance (%s)",
				v.StringFixed(kernel.MoneyPlaces), jobOrder.BalanceAmount().StringFixed(kernel.MoneyPlaces)))
	}
	r.amount = v

	return r, nil
}

func RestoreReceipt(id int64, number string, date time.Time, amount decimal.Decimal, remarks string, jobOrderID int64, isActive bool) *Receipt {
	return &Receipt{
		id:            id,
		number:        number,
		date:          date,
		amount:        amount,
		remarks:       remarks,
		jobOrderID:    jobOrderID,
		isActive:      isActive,
		isConstructed: true,
	}
}

func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

func (r *Receipt) ID() int64               { return r.id }
func (r *Receipt) Number() string          { return r.number }
func (r *Receipt) Date() time.Time         { return r.date }
func (r *Receipt) Amount() decimal.Decimal { return r.amount }
func (r *Receipt) Remarks() string         { return r.remarks }
func (r *Receipt) JobOrderID() int64       { return r.jobOrderID }
func (r *Receipt) IsActive() bool          { return r.isActive }

func (r *Receipt) AssignID(id int64) {
	if r.id == 0 {
		r.id = id
	}
}
