package ports

import (
	"context"

	"atelier/internal/core/domain/model/material"
)

type MaterialRepository interface {
	Add(ctx context.Context, m *material.Material) error

	// Get retrieves a material by id, or errs.ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*material.Material, error)
}
