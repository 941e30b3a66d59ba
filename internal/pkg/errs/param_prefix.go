package errs

import "errors"

// PrefixParam qualifies the ParamName of typed errors with prefix, so
// "quantity" reported for the third item becomes "job_order_items[2].quantity".
// Errors combined with errors.Join are rewritten element by element; other
// errors are returned unchanged.
func PrefixParam(prefix string, err error) error {
	if err == nil || prefix == "" {
		return err
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		parts := joined.Unwrap()
		rewritten := make([]error, 0, len(parts))
		for _, part := range parts {
			rewritten = append(rewritten, PrefixParam(prefix, part))
		}
		return errors.Join(rewritten...)
	}

	switch e := err.(type) {
	case *ValueIsInvalidError:
		cp := *e
		cp.ParamName = qualify(prefix, e.ParamName)
		return &cp
	case *ValueIsRequiredError:
		cp := *e
		cp.ParamName = qualify(prefix, e.ParamName)
		return &cp
	case *ValueIsOutOfRangeError:
		cp := *e
		cp.ParamName = qualify(prefix, e.ParamName)
		return &cp
	case *ObjectNotFoundError:
		cp := *e
		cp.ParamName = qualify(prefix, e.ParamName)
		return &cp
	}

	return err
}

func qualify(prefix, name string) string {
	if name == "" {
		return prefix
	}
	return prefix + "." + name
}
