package queries

import (
	"errors"
	"math"

	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrGetJobOrderQueryIsNotConstructed = errors.New(
	"GetJobOrderQuery must be created via NewGetJobOrderQuery constructor",
)

// GetJobOrderQuery reads the composite view of one active job order.
//
// Example:
//
//	query, err := NewGetJobOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetJobOrderQuery struct {
	jobOrderID int64

	guard guard.ConstructorGuard
}

func NewGetJobOrderQuery(jobOrderID int64) (GetJobOrderQuery, error) {
	if err := validateJobOrderID(jobOrderID); err != nil {
		return GetJobOrderQuery{}, err
	}
	return GetJobOrderQuery{jobOrderID: jobOrderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetJobOrderQueryIsNotConstructed)
}

func (q GetJobOrderQuery) JobOrderID() int64 { return q.jobOrderID }

func validateJobOrderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("job_order_id", id, 1, int64(math.MaxInt64))
	}
	return nil
}
