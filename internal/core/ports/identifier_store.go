package ports

import (
	"context"

	"atelier/internal/core/domain/model/identifier"
)

// IdentifierStore is the persistence behind identifier allocation. It must be
// bound to the caller's transaction so that a reserved value is released when
// the transaction rolls back.
type IdentifierStore interface {
	// NextValue atomically increments the counter of a sequence kind and returns
	// the new value. A missing counter is first seeded from existing rows.
	// Concurrent callers are serialized until the holding transaction ends.
	NextValue(ctx context.Context, kind identifier.Kind) (int64, error)

	// Exists reports whether value is already used by an entity of kind.
	Exists(ctx context.Context, kind identifier.Kind, value string) (bool, error)
}
