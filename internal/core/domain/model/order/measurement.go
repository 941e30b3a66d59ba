package order

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
)

// Notes are the four free-text remarks attached to a measurement.
type Notes [4]string

// Measurement records the customer's dimensions for one material.
type Measurement struct {
	id           int64
	materialID   int64
	measurements kernel.Measurements
	notes        Notes
	isActive     bool
}

func NewMeasurement(materialID int64, measurements kernel.Measurements, notes Notes) (*Measurement, error) {
	if err := errors.Join(
		validateMaterialID(materialID),
		measurements.Validate(),
	); err != nil {
		return nil, err
	}

	return &Measurement{
		materialID:   materialID,
		measurements: measurements,
		notes:        notes,
		isActive:     true,
	}, nil
}

// RestoreMeasurement rehydrates a persisted measurement.
func RestoreMeasurement(id, materialID int64, measurements kernel.Measurements, notes Notes, isActive bool) *Measurement {
	return &Measurement{
		id:           id,
		materialID:   materialID,
		measurements: measurements,
		notes:        notes,
		isActive:     isActive,
	}
}

func (m *Measurement) ID() int64                         { return m.id }
func (m *Measurement) MaterialID() int64                 { return m.materialID }
func (m *Measurement) Measurements() kernel.Measurements { return m.measurements }
func (m *Measurement) Notes() Notes                      { return m.notes }
func (m *Measurement) IsActive() bool                    { return m.isActive }

func (m *Measurement) AssignID(id int64) {
	if m.id == 0 {
		m.id = id
	}
}
