package ports

import (
	"context"

	"atelier/internal/core/domain/model/sale"
)

type SaleRepository interface {
	Add(ctx context.Context, s *sale.Sale) error
}
