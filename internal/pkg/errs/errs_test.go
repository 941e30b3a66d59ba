package errs_test

import (
	"errors"
	"testing"

	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("job_order", "JO-0042")

		assert.Equal(t, "job_order", err.ParamName)
		assert.Equal(t, "JO-0042", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: JO-0042", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("job_order", "JO-0042", cause)

		assert.Equal(t, "job_order", err.ParamName)
		assert.Equal(t, "JO-0042", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: job_order, ID is: JO-0042 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("material", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("payment_method")

		assert.Equal(t, "payment_method", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: payment_method", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown mode")
		err := errs.NewValueIsInvalidErrorWithCause("payment_method", cause)

		assert.Equal(t, "payment_method", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: payment_method (cause: unknown mode)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("advance_amount", -5, 0, 100, cause)

		assert.Equal(t, "advance_amount", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is advance_amount, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customer_name")

		assert.Equal(t, "customer_name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customer_name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank payload")
		err := errs.NewValueIsRequiredErrorWithCause("customer_name", cause)

		assert.Equal(t, "customer_name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: customer_name (cause: blank payload)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		cause := errors.New("invalid semver")
		err := errs.NewVersionIsInvalidError("version", cause)

		assert.Equal(t, "version", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: version (cause: invalid semver)", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		err := errs.NewVersionIsInvalidErrorWithCause("version")

		assert.Equal(t, "version", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: version", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})
}

func TestValueIsDuplicatedError(t *testing.T) {
	t.Run("NewValueIsDuplicatedError", func(t *testing.T) {
		err := errs.NewValueIsDuplicatedError("sale_number", "SALE-004211")

		assert.Equal(t, "sale_number", err.ParamName)
		assert.Equal(t, "SALE-004211", err.Value)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is duplicated: sale_number is SALE-004211", err.Error())
		assert.Equal(t, errs.ErrValueIsDuplicated, err.Unwrap())
	})

	t.Run("NewValueIsDuplicatedErrorWithCause without value", func(t *testing.T) {
		cause := errors.New("unique violation")
		err := errs.NewValueIsDuplicatedErrorWithCause("receipt_number", nil, cause)

		assert.Equal(t, "value is duplicated: receipt_number (cause: unique violation)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsDuplicated)
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionIsInvalid)
		require.Error(t, errs.ErrValueIsDuplicated)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "value is duplicated", errs.ErrValueIsDuplicated.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("job_order", "JO-0042")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("payment_method")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("customer_name")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		duplicatedErr := errs.NewValueIsDuplicatedError("sku", "04211")
		require.ErrorIs(t, duplicatedErr, errs.ErrValueIsDuplicated)

		versionInvalidErr := errs.NewVersionIsInvalidError("version", errors.New("test"))
		require.ErrorIs(t, versionInvalidErr, errs.ErrVersionIsInvalid)
	})
}

func TestPrefixParam(t *testing.T) {
	t.Run("single typed error", func(t *testing.T) {
		err := errs.PrefixParam("job_order_items[2]", errs.NewValueIsInvalidError("quantity"))

		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "job_order_items[2].quantity", invalid.ParamName)
	})

	t.Run("joined errors are rewritten one by one", func(t *testing.T) {
		err := errs.PrefixParam("job_order_measurements[0]", errors.Join(
			errs.NewValueIsInvalidError("thool"),
			errs.NewValueIsRequiredError("material"),
		))

		assert.Contains(t, err.Error(), "job_order_measurements[0].thool")
		assert.Contains(t, err.Error(), "job_order_measurements[0].material")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("untyped errors and nil pass through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Equal(t, plain, errs.PrefixParam("x", plain))
		require.NoError(t, errs.PrefixParam("x", nil))
	})
}
