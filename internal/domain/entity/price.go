package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the persisted unit price of a product. Product is the natural
// key; re-importing a product overwrites its price.
type Price struct {
	ID        int64           `json:"id"`
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
