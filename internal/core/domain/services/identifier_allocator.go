package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"atelier/internal/core/domain/model/identifier"
	"atelier/internal/core/ports"
)

// DefaultMaxAttempts bounds the collision retries of random identifier kinds.
const DefaultMaxAttempts = 20

// ErrIdentifierSpaceExhausted is returned when a random kind keeps colliding
// with existing values for every allowed attempt.
var ErrIdentifierSpaceExhausted = errors.New("identifier space exhausted")

// IdentifierAllocator hands out human-readable identifiers. Sequence kinds
// delegate to the store's atomic counter; random kinds draw candidates and
// check them against the store.
//
// The returned value is only reserved for the lifetime of the store's
// transaction, and unique indexes in storage remain the final guard.
type IdentifierAllocator struct {
	src         identifier.DigitSource
	maxAttempts int
}

// NewIdentifierAllocator creates an allocator. A nil src uses math/rand/v2;
// maxAttempts below 1 falls back to DefaultMaxAttempts.
func NewIdentifierAllocator(src identifier.DigitSource, maxAttempts int) IdentifierAllocator {
	if src == nil {
		src = globalSource{}
	}
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return IdentifierAllocator{src: src, maxAttempts: maxAttempts}
}

// Allocate returns the next identifier of kind.
//
// Example:
//
//	number, err := allocator.Allocate(ctx, uow.IdentifierStore(), identifier.OrderNumber)
//	// number == "JO-0004"
func (a IdentifierAllocator) Allocate(ctx context.Context, store ports.IdentifierStore, kind identifier.Kind) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	if kind.Strategy() == identifier.Sequence {
		n, err := store.NextValue(ctx, kind)
		if err != nil {
			return "", fmt.Errorf("next %s: %w", kind, err)
		}
		return kind.FormatSequence(n)
	}

	return a.allocateRandom(ctx, store, kind)
}

func (a IdentifierAllocator) allocateRandom(ctx context.Context, store ports.IdentifierStore, kind identifier.Kind) (string, error) {
	for range a.maxAttempts {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := kind.RandomCandidate(a.src)
		if err != nil {
			return "", err
		}

		taken, err := store.Exists(ctx, kind, candidate)
		if err != nil {
			return "", fmt.Errorf("check %s %q: %w", kind, candidate, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no free %s after %d attempts", ErrIdentifierSpaceExhausted, kind, a.maxAttempts)
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // identifiers are not secrets
}
