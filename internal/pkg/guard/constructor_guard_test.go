package guard_test

import (
	"errors"
	"testing"

	"atelier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the pattern used by commands and queries.
func TestConstructorGuardEmbedded(t *testing.T) {
	errReceiptNotConstructed := errors.New("Receipt must be created via NewReceipt")

	type receipt struct {
		number string
		guard  guard.ConstructorGuard
	}

	newReceipt := func(number string) (receipt, error) {
		if number == "" {
			return receipt{}, errors.New("receipt number is required")
		}
		return receipt{number: number, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		r, err := newReceipt("RCP001")
		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errReceiptNotConstructed))
		assert.Equal(t, "RCP001", r.number)
	})

	t.Run("zero_value_is_rejected", func(t *testing.T) {
		var r receipt
		assert.Equal(t, errReceiptNotConstructed, r.guard.Validate(errReceiptNotConstructed))
	})

	t.Run("copies_keep_state", func(t *testing.T) {
		r, err := newReceipt("RCP002")
		require.NoError(t, err)
		copied := r
		require.NoError(t, copied.guard.Validate(errReceiptNotConstructed))
	})
}

func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
