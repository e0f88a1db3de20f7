package entity

import "time"

// Sale is one persisted product line of an order. OrderID is not unique
// across sales (an order may contain several lines); ManagerID always
// references an existing Manager row — unresolvable lines are never written.
type Sale struct {
	ID            int64     `json:"id"`
	OrderID       string    `json:"order_id"`
	Date          time.Time `json:"date"`
	Product       string    `json:"product"`
	Quantity      int       `json:"quantity"`
	PurchaseType  string    `json:"purchase_type"`
	PaymentMethod string    `json:"payment_method"`
	ManagerID     int64     `json:"manager_id"`
	City          string    `json:"city"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ImportResult reports the outcome of one CSV import batch. Counts reflect
// rows actually written; a failed import always reports zero counts.
type ImportResult struct {
	Success          bool     `json:"success"`
	ImportedSales    int      `json:"imported_sales"`
	ImportedManagers int      `json:"imported_managers"`
	ImportedPrices   int      `json:"imported_prices"`
	Errors           []string `json:"errors,omitempty"`
}
