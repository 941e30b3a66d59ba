package ports

import (
	"context"

	"atelier/internal/core/domain/model/receipt"
)

type ReceiptRepository interface {
	Add(ctx context.Context, r *receipt.Receipt) error
}
