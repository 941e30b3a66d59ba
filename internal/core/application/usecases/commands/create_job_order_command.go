package commands

import (
	"errors"
	"math"
	"strings"
	"time"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateJobOrderCommandIsNotConstructed = errors.New(
		"CreateJobOrderCommand must be created via NewCreateJobOrderCommand constructor",
	)
	ErrCustomerIsAmbiguous = errors.New("customer_id and customer_data are mutually exclusive")
	ErrCustomerIsMissing   = errors.New("either customer_id or customer_data is required")
)

// CreateJobOrderParams are the inputs of NewCreateJobOrderCommand. Nil
// pointers mean "not sent".
type CreateJobOrderParams struct {
	CustomerID    *int64
	CustomerData  *CustomerData
	Status        *order.Status
	DeliveryDate  *time.Time
	TotalAmount   decimal.Decimal
	AdvanceAmount decimal.Decimal
	PaymentMethod order.PaymentMethod
	CashAmount    *decimal.Decimal
	CardAmount    *decimal.Decimal
	Remarks       string
	Items         []ItemInput
	Measurements  []MeasurementInput
}

// CreateJobOrderCommand creates a job order with its children, and the
// customer too when it is given inline.
//
// Example:
//
//	customerID := int64(12)
//	cmd, err := NewCreateJobOrderCommand(CreateJobOrderParams{
//	    CustomerID:    &customerID,
//	    TotalAmount:   decimal.RequireFromString("150.00"),
//	    AdvanceAmount: decimal.RequireFromString("50.00"),
//	    PaymentMethod: order.Split,
//	})
type CreateJobOrderCommand struct { //nolint:recvcheck //using for validation
	params CreateJobOrderParams

	guard guard.ConstructorGuard
}

// NewCreateJobOrderCommand checks the request shape. Amount and child rules
// are enforced by the order aggregate when the command is handled.
func NewCreateJobOrderCommand(p CreateJobOrderParams) (CreateJobOrderCommand, error) {
	cmd := CreateJobOrderCommand{guard: guard.NewConstructorGuard()}

	if p.PaymentMethod == "" {
		p.PaymentMethod = order.Cash
	}

	if err := errors.Join(
		validateCustomerRef(p.CustomerID, p.CustomerData),
		validateStatus(p.Status),
		p.PaymentMethod.Validate(),
	); err != nil {
		return CreateJobOrderCommand{}, err
	}

	if p.Items == nil {
		p.Items = []ItemInput{}
	}
	if p.Measurements == nil {
		p.Measurements = []MeasurementInput{}
	}
	cmd.params = p
	return cmd, nil
}

func (c CreateJobOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobOrderCommandIsNotConstructed)
}

// CustomerID is the existing customer to bill, or nil when CustomerData is set.
func (c CreateJobOrderCommand) CustomerID() *int64 { return c.params.CustomerID }

func (c CreateJobOrderCommand) CustomerData() *CustomerData { return c.params.CustomerData }

func (c CreateJobOrderCommand) Status() *order.Status { return c.params.Status }

// DeliveryDate is nil when the default lead time applies.
func (c CreateJobOrderCommand) DeliveryDate() *time.Time { return c.params.DeliveryDate }

func (c CreateJobOrderCommand) Terms() order.Terms {
	return order.Terms{
		TotalAmount:   c.params.TotalAmount,
		AdvanceAmount: c.params.AdvanceAmount,
		PaymentMethod: c.params.PaymentMethod,
		CashAmount:    c.params.CashAmount,
		CardAmount:    c.params.CardAmount,
	}
}

func (c CreateJobOrderCommand) Remarks() string { return c.params.Remarks }

// Items is always a present replacement; a new order starts from the given
// list, possibly empty.
func (c CreateJobOrderCommand) Items() Replacement[ItemInput] {
	return Replace(c.params.Items)
}

func (c CreateJobOrderCommand) Measurements() Replacement[MeasurementInput] {
	return Replace(c.params.Measurements)
}

func validateCustomerRef(id *int64, data *CustomerData) error {
	switch {
	case id != nil && data != nil:
		return errs.NewValueIsInvalidErrorWithCause("customer_id", ErrCustomerIsAmbiguous)
	case id == nil && data == nil:
		return errs.NewValueIsRequiredErrorWithCause("customer_id", ErrCustomerIsMissing)
	case id != nil && *id <= 0:
		return errs.NewValueIsOutOfRangeError("customer_id", *id, 1, int64(math.MaxInt64))
	case data != nil:
		return errs.PrefixParam("customer_data", validateCustomerData(*data))
	}
	return nil
}

func validateCustomerData(data CustomerData) error {
	var errList []error
	if strings.TrimSpace(data.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if strings.TrimSpace(data.Phone) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("phone"))
	}
	return errors.Join(errList...)
}

func validateStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	return status.Validate()
}
