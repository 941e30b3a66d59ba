package errs

import (
	"errors"
	"fmt"
)

var ErrValueIsDuplicated = errors.New("value is duplicated")

// ValueIsDuplicatedError reports a unique value that is already taken,
// typically surfaced from a unique index violation.
type ValueIsDuplicatedError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewValueIsDuplicatedErrorWithCause(paramName string, value any, cause error) *ValueIsDuplicatedError {
	return &ValueIsDuplicatedError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func NewValueIsDuplicatedError(paramName string, value any) *ValueIsDuplicatedError {
	return &ValueIsDuplicatedError{
		ParamName: paramName,
		Value:     value,
	}
}

func (e *ValueIsDuplicatedError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrValueIsDuplicated, e.ParamName)
	if e.Value != nil {
		msg = fmt.Sprintf("%s is %v", msg, sanitize(e.Value))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsDuplicatedError) Unwrap() error {
	return ErrValueIsDuplicated
}
