package commands

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateMaterialCommandIsNotConstructed = errors.New(
	"CreateMaterialCommand must be created via NewCreateMaterialCommand constructor",
)

// CreateMaterialCommand adds a catalog material. An empty SKU is replaced by
// a generated five-digit one.
type CreateMaterialCommand struct { //nolint:recvcheck //using for validation
	sku          string
	name         string
	measurements kernel.Measurements
	price        decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateMaterialCommand(sku, name string, dimensions kernel.Dimensions, price decimal.Decimal) (CreateMaterialCommand, error) {
	measurements, measurementsErr := kernel.NewMeasurements(dimensions)
	_, priceErr := kernel.NonNegativeAmount("price", price)

	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(nameErr, measurementsErr, priceErr); err != nil {
		return CreateMaterialCommand{}, err
	}

	return CreateMaterialCommand{
		sku:          strings.TrimSpace(sku),
		name:         strings.TrimSpace(name),
		measurements: measurements,
		price:        price,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMaterialCommand) Validate() error {
	return c.guard.Validate(ErrCreateMaterialCommandIsNotConstructed)
}

// SKU is empty when one should be generated.
func (c CreateMaterialCommand) SKU() string { return c.sku }

func (c CreateMaterialCommand) Name() string { return c.name }

func (c CreateMaterialCommand) Measurements() kernel.Measurements { return c.measurements }

func (c CreateMaterialCommand) Price() decimal.Decimal { return c.price }
