package kernel

import (
	"errors"
	"fmt"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMeasurementsIsNotConstructed is returned for a zero-value Measurements.
var ErrMeasurementsIsNotConstructed = errs.NewValueIsRequiredError(
	"measurements must be created via NewMeasurements")

// Dimensions is the raw input for NewMeasurements.
type Dimensions struct {
	Thool    decimal.Decimal
	Kethet   decimal.Decimal
	ThoolKum decimal.Decimal
	ArdhFKum decimal.Decimal
	Jamba    decimal.Decimal
	Ragab    decimal.Decimal
}

// Measurements is the fixed set of six garment dimensions. Every value is
// zero or greater.
type Measurements struct { //nolint:recvcheck //using for validation
	thool    decimal.Decimal
	kethet   decimal.Decimal
	thoolKum decimal.Decimal
	ardhFKum decimal.Decimal
	jamba    decimal.Decimal
	ragab    decimal.Decimal
	guard    guard.ConstructorGuard
}

// NewMeasurements validates all six dimensions and reports every invalid one.
func NewMeasurements(d Dimensions) (Measurements, error) {
	m := Measurements{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		setDimension(&m.thool, "thool", d.Thool),
		setDimension(&m.kethet, "kethet", d.Kethet),
		setDimension(&m.thoolKum, "thool_kum", d.ThoolKum),
		setDimension(&m.ardhFKum, "ardh_f_kum", d.ArdhFKum),
		setDimension(&m.jamba, "jamba", d.Jamba),
		setDimension(&m.ragab, "ragab", d.Ragab),
	); err != nil {
		return Measurements{}, err
	}

	return m, nil
}

// ZeroMeasurements returns a valid Measurements with every dimension at zero.
func ZeroMeasurements() Measurements {
	return Measurements{guard: guard.NewConstructorGuard()}
}

func (m Measurements) Validate() error {
	return m.guard.Validate(ErrMeasurementsIsNotConstructed)
}

func (m Measurements) Thool() decimal.Decimal    { return m.thool }
func (m Measurements) Kethet() decimal.Decimal   { return m.kethet }
func (m Measurements) ThoolKum() decimal.Decimal { return m.thoolKum }
func (m Measurements) ArdhFKum() decimal.Decimal { return m.ardhFKum }
func (m Measurements) Jamba() decimal.Decimal    { return m.jamba }
func (m Measurements) Ragab() decimal.Decimal    { return m.ragab }

// Dimensions returns the raw values, convenient for persistence mapping.
func (m Measurements) Dimensions() Dimensions {
	return Dimensions{
		Thool:    m.thool,
		Kethet:   m.kethet,
		ThoolKum: m.thoolKum,
		ArdhFKum: m.ardhFKum,
		Jamba:    m.jamba,
		Ragab:    m.ragab,
	}
}

func (m Measurements) Equal(other Measurements) bool {
	return m.thool.Equal(other.thool) &&
		m.kethet.Equal(other.kethet) &&
		m.thoolKum.Equal(other.thoolKum) &&
		m.ardhFKum.Equal(other.ardhFKum) &&
		m.jamba.Equal(other.jamba) &&
		m.ragab.Equal(other.ragab)
}

func setDimension(dst *decimal.Decimal, name string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", value.String()))
	}
	if err := WithinMoneyRange(name, value); err != nil {
		return err
	}
	*dst = value
	return nil
}
