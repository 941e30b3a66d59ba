// Package customer holds the Customer entity referenced by job orders.
package customer

import (
	"errors"
	"fmt"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is identified internally by a numeric id and externally by a
// sequential display code.
type Customer struct {
	id       int64
	code     string
	name     string
	phone    string
	balance  decimal.Decimal
	points   int
	isActive bool

	isConstructed bool
}

// NewCustomer validates a customer. Balance and points default to zero and
// may never be negative.
func NewCustomer(code, name, phone string, balance decimal.Decimal, points int) (*Customer, error) {
	c := &Customer{isActive: true, isConstructed: true}

	if err := errors.Join(
		c.setCode(code),
		c.setName(name),
		c.setPhone(phone),
		c.setBalance(balance),
		c.setPoints(points),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rehydrates a stored customer.
func RestoreCustomer(id int64, code, name, phone string, balance decimal.Decimal, points int, isActive bool) *Customer {
	return &Customer{
		id:            id,
		code:          code,
		name:          name,
		phone:         phone,
		balance:       balance,
		points:        points,
		isActive:      isActive,
		isConstructed: true,
	}
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() int64                { return c.id }
func (c *Customer) Code() string             { return c.code }
func (c *Customer) Name() string             { return c.name }
func (c *Customer) Phone() string            { return c.phone }
func (c *Customer) Balance() decimal.Decimal { return c.balance }
func (c *Customer) Points() int              { return c.points }
func (c *Customer) IsActive() bool           { return c.isActive }

func (c *Customer) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}

func (c *Customer) setCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("customer_id")
	}
	c.code = code
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setBalance(balance decimal.Decimal) error {
	v, err := kernel.NonNegativeAmount("balance", balance)
	if err != nil {
		return err
	}
	c.balance = v
	return nil
}

func (c *Customer) setPoints(points int) error {
	if points < 0 {
		return errs.NewValueIsInvalidErrorWithCause("points", fmt.Errorf("%d is negative", points))
	}
	c.points = points
	return nil
}
