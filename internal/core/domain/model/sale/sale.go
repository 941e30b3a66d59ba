// Package sale holds over-the-counter sales that are not tied to a job order.
package sale

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrSaleIsNotConstructed = errors.New("Sale must be created via NewSale constructor")

// PaymentMethod of a sale. Sales use bank transfers rather than cards.
type PaymentMethod string

const (
	Cash     PaymentMethod = "cash"
	Bank     PaymentMethod = "bank"
	CashBank PaymentMethod = "cash_bank"
)

// DefaultStatus is assigned when a sale is recorded without one.
const DefaultStatus = "pending"

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch m := PaymentMethod(raw); m {
	case Cash, Bank, CashBank:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment_method",
			fmt.Errorf("%q is not one of cash, bank, cash_bank", raw))
	}
}

type Sale struct {
	id            int64
	number        string
	customerName  string
	amount        decimal.Decimal
	totalAmount   decimal.Decimal
	paymentMethod PaymentMethod
	status        string
	notes         string
	date          time.Time
	isActive      bool

	isConstructed bool
}

func NewSale(
	number, customerName string,
	amount, totalAmount decimal.Decimal,
	method PaymentMethod,
	status, notes string,
	date time.Time,
) (*Sale, error) {
	s := &Sale{
		paymentMethod: method,
		status:        strings.TrimSpace(status),
		notes:         notes,
		date:          date,
		isActive:      true,
		isConstructed: true,
	}
	if s.status == "" {
		s.status = DefaultStatus
	}

	var errList []error
	if strings.TrimSpace(number) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("sale_number"))
	}
	s.number = number

	if strings.TrimSpace(customerName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer_name"))
	}
	s.customerName = strings.TrimSpace(customerName)

	a, err := kernel.NonNegativeAmount("amount", amount)
	errList = append(errList, err)
	s.amount = a

	total, err := kernel.NonNegativeAmount("total_amount", totalAmount)
	errList = append(errList, err)
	s.totalAmount = total

	if _, err = ParsePaymentMethod(string(method)); err != nil {
		errList = append(errList, err)
	}
	if date.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("date"))
	}

	if err = errors.Join(errList...); err != nil {
		return nil, err
	}
	return s, nil
}

func RestoreSale(
	id int64, number, customerName string,
	amount, totalAmount decimal.Decimal,
	method PaymentMethod,
	status, notes string,
	date time.Time,
	isActive bool,
) *Sale {
	return &Sale{
		id:            id,
		number:        number,
		customerName:  customerName,
		amount:        amount,
		totalAmount:   totalAmount,
		paymentMethod: method,
		status:        status,
		notes:         notes,
		date:          date,
		isActive:      isActive,
		isConstructed: true,
	}
}

func (s *Sale) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSaleIsNotConstructed
	}
	return nil
}

func (s *Sale) ID() int64                    { return s.id }
func (s *Sale) Number() string               { return s.number }
func (s *Sale) CustomerName() string         { return s.customerName }
func (s *Sale) Amount() decimal.Decimal      { return s.amount }
func (s *Sale) TotalAmount() decimal.Decimal { return s.totalAmount }
func (s *Sale) PaymentMethod() PaymentMethod { return s.paymentMethod }
func (s *Sale) Status() string               { return s.status }
func (s *Sale) Notes() string                { return s.notes }
func (s *Sale) Date() time.Time              { return s.date }
func (s *Sale) IsActive() bool               { return s.isActive }

func (s *Sale) AssignID(id int64) {
	if s.id == 0 {
		s.id = id
	}
}
