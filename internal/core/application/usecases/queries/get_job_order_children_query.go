package queries

import (
	"errors"

	"atelier/internal/pkg/guard"
)

var (
	ErrGetJobOrderItemsQueryIsNotConstructed = errors.New(
		"GetJobOrderItemsQuery must be created via NewGetJobOrderItemsQuery constructor",
	)
	ErrGetJobOrderMeasurementsQueryIsNotConstructed = errors.New(
		"GetJobOrderMeasurementsQuery must be created via NewGetJobOrderMeasurementsQuery constructor",
	)
)

// GetJobOrderItemsQuery reads the active items of an active order.
type GetJobOrderItemsQuery struct {
	jobOrderID int64

	guard guard.ConstructorGuard
}

func NewGetJobOrderItemsQuery(jobOrderID int64) (GetJobOrderItemsQuery, error) {
	if err := validateJobOrderID(jobOrderID); err != nil {
		return GetJobOrderItemsQuery{}, err
	}
	return GetJobOrderItemsQuery{jobOrderID: jobOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobOrderItemsQueryIsNotConstructed)
}

func (q GetJobOrderItemsQuery) JobOrderID() int64 { return q.jobOrderID }

// GetJobOrderMeasurementsQuery reads the active measurements of an active order.
type GetJobOrderMeasurementsQuery struct {
	jobOrderID int64

	guard guard.ConstructorGuard
}

func NewGetJobOrderMeasurementsQuery(jobOrderID int64) (GetJobOrderMeasurementsQuery, error) {
	if err := validateJobOrderID(jobOrderID); err != nil {
		return GetJobOrderMeasurementsQuery{}, err
	}
	return GetJobOrderMeasurementsQuery{jobOrderID: jobOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobOrderMeasurementsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobOrderMeasurementsQueryIsNotConstructed)
}

func (q GetJobOrderMeasurementsQuery) JobOrderID() int64 { return q.jobOrderID }
