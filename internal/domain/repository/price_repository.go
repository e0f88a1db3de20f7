package repository

import (
	"context"

	"salespulse/internal/domain/entity"
)

// PriceRepository defines the interface for price-list database operations.
type PriceRepository interface {
	// Upsert creates the price or, when the product already exists, updates
	// its price. The price's ID and timestamps are populated from the
	// persisted row either way.
	Upsert(ctx context.Context, price *entity.Price) error
}
