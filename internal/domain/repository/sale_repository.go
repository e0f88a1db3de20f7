package repository

import (
	"context"

	"salespulse/internal/domain/entity"
)

// SaleRepository defines the interface for sale-line database operations.
// There is no delete path: persisted sales live until re-imported.
type SaleRepository interface {
	// Insert persists one sale line. The sale's ManagerID must reference an
	// existing manager row.
	Insert(ctx context.Context, sale *entity.Sale) error
}
