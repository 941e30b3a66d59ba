package order

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Status is the lifecycle state of a job order. The usual flow is
//
//	pending -> in_progress -> completed -> delivered
//
// but no transition graph is enforced: any valid status may replace any other.
type Status string

const (
	Pending    Status = "pending"
	InProgress Status = "in_progress"
	Completed  Status = "completed"
	Delivered  Status = "delivered"
)

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, InProgress, Completed, Delivered}
}

// ParseStatus converts external input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that the status is one of the four known values.
func (s Status) Validate() error {
	for _, valid := range Statuses() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
}

func (s Status) String() string {
	return string(s)
}
