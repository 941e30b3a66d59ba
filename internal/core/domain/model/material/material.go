// Package material holds the catalog entries that order items and
// measurements refer to.
package material

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")

// Material is immutable reference data: a name, default measurements and a unit price.
type Material struct {
	id           int64
	sku          string
	name         string
	measurements kernel.Measurements
	price        decimal.Decimal
	isActive     bool

	isConstructed bool
}

func NewMaterial(sku, name string, measurements kernel.Measurements, price decimal.Decimal) (*Material, error) {
	m := &Material{isActive: true, isConstructed: true}

	if err := errors.Join(
		m.setSKU(sku),
		m.setName(name),
		measurements.Validate(),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	m.measurements = measurements
	return m, nil
}

func RestoreMaterial(id int64, sku, name string, measurements kernel.Measurements, price decimal.Decimal, isActive bool) *Material {
	return &Material{
		id:            id,
		sku:           sku,
		name:          name,
		measurements:  measurements,
		price:         price,
		isActive:      isActive,
		isConstructed: true,
	}
}

func (m *Material) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMaterialIsNotConstructed
	}
	return nil
}

func (m *Material) ID() int64                         { return m.id }
func (m *Material) SKU() string                       { return m.sku }
func (m *Material) Name() string                      { return m.name }
func (m *Material) Measurements() kernel.Measurements { return m.measurements }
func (m *Material) Price() decimal.Decimal            { return m.price }
func (m *Material) IsActive() bool                    { return m.isActive }

func (m *Material) AssignID(id int64) {
	if m.id == 0 {
		m.id = id
	}
}

func (m *Material) setSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	m.sku = sku
	return nil
}

func (m *Material) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Material) setPrice(price decimal.Decimal) error {
	v, err := kernel.NonNegativeAmount("price", price)
	if err != nil {
		return err
	}
	m.price = v
	return nil
}
